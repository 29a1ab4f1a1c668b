package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dkrasnov/storefront/internal/service"
)

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, echo.Map{"success": true, "data": data})
}

func respondList(c echo.Context, code int, count int, data interface{}) error {
	return c.JSON(code, echo.Map{"success": true, "count": count, "data": data})
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": true, "message": message})
}

func respondBad(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": false, "message": message})
}

// respondError maps a service error to the wire: classified failures carry
// the message in the standard envelope, anything else is a bare 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return respondBad(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return respondBad(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return respondBad(c, http.StatusConflict, err.Error())
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
