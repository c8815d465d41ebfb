package service

import (
	"errors"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

// expected are the repository outcomes handlers know how to present.
var expected = []error{
	errorvalues.ErrUserNotFound,
	errorvalues.ErrExerciseNotFound,
	errorvalues.ErrWorkoutPlanNotFound,
	errorvalues.ErrScheduledWorkoutNotFound,
	errorvalues.ErrWorkoutLogNotFound,
}

// repoError passes expected failures through and wraps the rest.
func repoError(repo string, err error) error {
	if _, ok := errorvalues.AsValidationError(err); ok {
		return err
	}
	for _, e := range expected {
		if errors.Is(err, e) {
			return err
		}
	}
	return errors.New(repo + " repository error: " + err.Error())
}
