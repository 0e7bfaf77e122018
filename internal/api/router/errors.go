package router

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/newsdesk/internal/apperr"
	"github.com/DjordjeVuckovic/newsdesk/internal/storage"
)

// storeError translates storage failures into client facing errors.
func storeError(err error, notFound string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperr.NewNotFound(notFound)
	case errors.Is(err, storage.ErrNotConfigured):
		return apperr.NewUnavailable("Article store not configured", err)
	default:
		return err
	}
}

func requireID(raw string) (string, error) {
	id, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperr.NewValidationWrap("Invalid article id", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperr.NewValidation("Missing article id")
	}
	return id, nil
}

func ready(backend any) error {
	if err := storage.Ready(backend); err != nil {
		return apperr.NewUnavailable("Article store not configured", fmt.Errorf("store check: %w", err))
	}
	return nil
}
