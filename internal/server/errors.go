// Package server provides the HTTP REST API for the match analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/ats-match/internal/analyzer"
	"github.com/jonathan/ats-match/internal/db"
	"github.com/jonathan/ats-match/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var inputErr *analyzer.InputError
	var validationErr *ErrValidation

	switch {
	case errors.As(err, &inputErr), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ingestion.ErrFetchFailed):
		return http.StatusBadGateway
	case errors.Is(err, ingestion.ErrExtractionFailed), errors.Is(err, ingestion.ErrEmptyPosting):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
