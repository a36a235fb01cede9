package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/internal/dispatch"
)

var (
	ErrNoStatusInPayload  = errors.New("push payload carries no subscription status")
	ErrUnparseablePayload = errors.New("push payload status could not be parsed")
)

// OperationError is a failed outcome handed to a dispatch error handler.
type OperationError struct {
	Method  string
	Code    int
	Message string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed (Error code: %d): %s", e.Method, e.Code, e.Message)
}

// Outcome classifies the failure.
func (e *OperationError) Outcome() dispatch.Outcome {
	return dispatch.OutcomeOf(e.Code)
}
