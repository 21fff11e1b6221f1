// Package services implements the scheduling pipeline: request validation,
// parameter resolution, VE record creation, and Connect task creation with
// compensation.
package services

import "errors"

// GenericErrorMessage is the only text an internal failure ever shows the
// caller. Details stay in the logs.
const GenericErrorMessage = "Something went wrong while scheduling the meeting. Please try again."

// ValidationError marks a user-actionable failure: bad input, a rejected
// request shape, or a collaborator rejection translated into text the agent
// can act on. Its message is returned verbatim with HTTP 400. Everything
// else is an internal error and maps to 500 with GenericErrorMessage.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError checks if an error should surface its message to the
// caller with HTTP 400.
func IsValidationError(err error) bool {
	var ve *ValidationError

	return errors.As(err, &ve)
}
