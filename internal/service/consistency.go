package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

// ConsistencyChecker verifies references in a request before anything is written.
// A resource owned by someone else is reported exactly like a missing one.
type ConsistencyChecker struct {
	exercises repository.ExercisesRepositoryI
	plans     repository.WorkoutPlansRepositoryI
	schedules repository.ScheduledWorkoutsRepositoryI
	logs      repository.WorkoutLogsRepositoryI
}

func NewConsistencyChecker(
	exercises repository.ExercisesRepositoryI,
	plans repository.WorkoutPlansRepositoryI,
	schedules repository.ScheduledWorkoutsRepositoryI,
	logs repository.WorkoutLogsRepositoryI,
) *ConsistencyChecker {
	return &ConsistencyChecker{
		exercises: exercises,
		plans:     plans,
		schedules: schedules,
		logs:      logs,
	}
}

// CheckExercises reports one error per unknown id, deduplicated, in input order.
func (cc *ConsistencyChecker) CheckExercises(ctx context.Context, ids []uuid.UUID) error {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	found, err := cc.exercises.GetByIDs(ctx, unique)
	if err != nil {
		return errors.New("exercises repository error: " + err.Error())
	}
	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, e := range found {
		existing[e.ID] = struct{}{}
	}
	var fieldErrors []errorvalues.FieldError
	for _, id := range unique {
		if _, ok := existing[id]; !ok {
			fieldErrors = append(fieldErrors, errorvalues.FieldError{
				Field:   "exerciseId",
				Message: "Exercise with ID " + id.String() + " does not exist",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return errorvalues.NewValidationError(errorvalues.MsgInvalidExerciseIDs, fieldErrors...)
	}
	return nil
}

func (cc *ConsistencyChecker) OwnedPlan(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutPlan, error) {
	plan, err := cc.plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutPlanNotFound) {
			return nil, err
		}
		return nil, errors.New("workout plans repository error: " + err.Error())
	}
	if plan.UserID != uid {
		return nil, errorvalues.ErrWorkoutPlanNotFound
	}
	return plan, nil
}

func (cc *ConsistencyChecker) OwnedSchedule(ctx context.Context, uid, id uuid.UUID) (*entity.ScheduledWorkout, error) {
	sw, err := cc.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrScheduledWorkoutNotFound) {
			return nil, err
		}
		return nil, errors.New("scheduled workouts repository error: " + err.Error())
	}
	if sw.UserID != uid {
		return nil, errorvalues.ErrScheduledWorkoutNotFound
	}
	return sw, nil
}

func (cc *ConsistencyChecker) OwnedLog(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutLog, error) {
	log, err := cc.logs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWorkoutLogNotFound) {
			return nil, err
		}
		return nil, errors.New("workout logs repository error: " + err.Error())
	}
	if log.UserID != uid {
		return nil, errorvalues.ErrWorkoutLogNotFound
	}
	return log, nil
}
