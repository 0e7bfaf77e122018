package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

const formatKey = "apperr.format"

type Format int

const (
	FormatJSON Format = iota
	FormatPlain
)

// WithFormat selects how errors of the wrapped routes are written.
func WithFormat(f Format) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(formatKey, f)
			return next(c)
		}
	}
}

// Resolve maps an error to the status code and the message safe to show to
// clients. Anything unrecognised becomes a generic 500.
func Resolve(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Message
	}

	var ue *UpstreamError
	if errors.As(err, &ue) {
		return http.StatusInternalServerError, fmt.Sprintf("Failed to fetch %s: %d", ue.Resource, ue.Status)
	}

	var un *UnavailableError
	if errors.As(err, &un) {
		return http.StatusInternalServerError, un.Message
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := Resolve(err)
		if code >= http.StatusInternalServerError {
			slog.Error("Request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", code,
				"error", err)
		}

		if f, ok := c.Get(formatKey).(Format); ok && f == FormatPlain {
			_ = c.String(code, msg)
			return
		}
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}
