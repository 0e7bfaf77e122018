package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
	"github.com/labstack/echo/v4"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid id", inner)

	if err.Error() != "invalid id: parse failed" {
		t.Errorf("expected 'invalid id: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("missing article id")

	wrapped := fmt.Errorf("gate: %w", original)
	doubleWrapped := fmt.Errorf("handler: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "missing article id" {
		t.Errorf("expected 'missing article id', got %q", ve.Message)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation",
			err:      fmt.Errorf("wrap: %w", apperr.NewValidation("Missing article id")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Missing article id",
		},
		{
			name:     "not found",
			err:      apperr.NewNotFound("Article not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "Article not found",
		},
		{
			name:     "upstream",
			err:      &apperr.UpstreamError{Resource: "image", Status: 403},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to fetch image: 403",
		},
		{
			name:     "unavailable hides cause",
			err:      apperr.NewUnavailable("Article store not configured", errors.New("STORE_KEY missing")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Article store not configured",
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
			wantMsg:  "nope",
		},
		{
			name:     "plain error is generic",
			err:      errors.New("pq: connection refused at 10.0.0.3"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := apperr.Resolve(tt.err)
			if code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, code)
			}
			if msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}
