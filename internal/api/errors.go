package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/xcursor/internal/cursorfile"
	"github.com/samcharles93/xcursor/pkg/xcursor"
)

var ErrBodyTooLarge = errors.New("request_too_large")

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "")
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg, "")
}

func writeError(c *echo.Context, status int, errType, msg, code string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
			Code:    code,
		},
	})
}

// writeDecodeError maps a loader failure to a response. Malformed cursor
// data is 422 with the stable error kind as the code.
func writeDecodeError(c *echo.Context, err error) error {
	if errors.Is(err, cursorfile.ErrTooLarge) || errors.Is(err, ErrBodyTooLarge) {
		return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request_error", err.Error(), "request_too_large")
	}
	return writeError(c, http.StatusUnprocessableEntity, "decode_error", err.Error(), xcursor.Kind(err))
}
