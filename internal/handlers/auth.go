package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/auth"
	"github.com/dkrasnov/storefront/internal/logging"
	"github.com/dkrasnov/storefront/internal/transport"
)

type AuthHandler struct {
	Tokens *auth.TokenService
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	if !h.Tokens.Enabled() {
		l.Warn("login_failed", "status", 503, "reason", "auth disabled")
		return respondBad(c, http.StatusServiceUnavailable, "Auth is not configured")
	}

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return respondBad(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		l.Warn("login_failed", "status", 400, "reason", "missing credentials")
		return respondBad(c, http.StatusBadRequest, "Username and password are required")
	}

	token, err := h.Tokens.IssueToken(req.Username, req.Password)
	if err != nil {
		l.Warn("login_failed", "status", 401, "error", err)
		return respondBad(c, http.StatusUnauthorized, "Invalid username or password")
	}

	l.Info("login_success", "username", req.Username)
	return respondData(c, http.StatusOK, echo.Map{"access_token": token})
}
