package errorvalues

import (
	"errors"
	"strings"
)

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrExerciseNotFound         = errors.New("exercise not found")
	ErrWorkoutPlanNotFound      = errors.New("workout plan not found")
	ErrScheduledWorkoutNotFound = errors.New("scheduled workout not found")
	ErrWorkoutLogNotFound       = errors.New("workout log not found")
)

const (
	MsgValidationFailed    = "Validation failed"
	MsgInvalidExerciseIDs  = "Invalid exercise IDs"
	MsgInvalidRequestQuery = "Invalid query parameters"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is an expected, user-facing failure. It always carries at least one field error.
type ValidationError struct {
	Message string
	Errors  []FieldError
}

func NewValidationError(message string, errs ...FieldError) *ValidationError {
	return &ValidationError{
		Message: message,
		Errors:  errs,
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.ToLower(e.Message) + ": " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if there is one in its chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
