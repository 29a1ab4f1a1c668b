package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/hash"
)

// TokenService issues and checks the admin bearer token. With no secret
// configured the API runs open: IssueToken refuses and RequireAdmin lets
// everything through.
type TokenService struct {
	Secret            []byte
	AdminUsername     string
	AdminPasswordHash string
}

const tokenTTL = time.Hour

func (t *TokenService) Enabled() bool {
	return len(t.Secret) > 0
}

func (t *TokenService) IssueToken(username, password string) (string, error) {
	if !t.Enabled() {
		return "", fmt.Errorf("auth is not configured")
	}
	if username != t.AdminUsername || !hash.CheckPassword(t.AdminPasswordHash, password) {
		return "", fmt.Errorf("invalid credentials")
	}

	exp := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"exp":  exp.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.Secret)
}

func (t *TokenService) parse(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", tok.Header["alg"])
		}
		return t.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	return claims, nil
}

func (t *TokenService) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !t.Enabled() {
			return next(c)
		}

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := t.parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if role, _ := claims["role"].(string); role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}

		c.Set("username", claims["sub"])
		return next(c)
	}
}
