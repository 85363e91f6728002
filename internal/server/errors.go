// Package server provides the HTTP shell around résumé analysis and job search.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-critiquer/internal/ingestion"
	"github.com/jonathan/resume-critiquer/internal/llm"
	"github.com/jonathan/resume-critiquer/internal/pipeline"
)

// ErrSessionNotFound indicates an unknown or expired session id
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

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
	var (
		validation     *ErrValidation
		fieldErrs      validator.ValidationErrors
		content        *ingestion.ContentError
		extraction     *ingestion.ExtractionError
		upstream       *llm.UpstreamError
		exhausted      *pipeline.ExhaustionError
		noSkills       *pipeline.NoSkillsError
		missingSession *ErrSessionNotFound
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &content), errors.As(err, &extraction):
		return http.StatusBadRequest
	case errors.As(err, &noSkills):
		return http.StatusUnprocessableEntity
	case errors.As(err, &missingSession), errors.As(err, &exhausted):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
