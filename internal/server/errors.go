// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/flow"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Duplicate entries map to 409 Conflict; rejected payloads to 400.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *types.ErrDuplicateSkill, *types.ErrDuplicateTechnology:
		return http.StatusConflict
	case *types.ErrInvalidSkillLevel, *ErrValidation, *flow.ErrInvalidStep:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
