package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type WorkoutLogService struct {
	repo    repository.WorkoutLogsRepositoryI
	checker *ConsistencyChecker
}

func NewWorkoutLogService(logsRepo repository.WorkoutLogsRepositoryI, checker *ConsistencyChecker) *WorkoutLogService {
	return &WorkoutLogService{
		repo:    logsRepo,
		checker: checker,
	}
}

// Create stores the log and its entries. A log recorded against a scheduled workout
// marks that workout COMPLETED in the same transaction.
func (ls *WorkoutLogService) Create(ctx context.Context, uid uuid.UUID, req *CreateWorkoutLogRequest) (*entity.WorkoutLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	log := &entity.WorkoutLog{
		UserID:       uid,
		CompletedAt:  mustParseTime(req.CompletedAt),
		Duration:     req.Duration,
		Notes:        req.Notes,
		ExerciseLogs: exerciseLogs(req.Exercises),
	}
	if req.ScheduledWorkoutID != nil && *req.ScheduledWorkoutID != "" {
		id := uuid.MustParse(*req.ScheduledWorkoutID)
		if _, err := ls.checker.OwnedSchedule(ctx, uid, id); err != nil {
			return nil, err
		}
		log.ScheduledWorkoutID = &id
	}
	if req.WorkoutPlanID != nil && *req.WorkoutPlanID != "" {
		id := uuid.MustParse(*req.WorkoutPlanID)
		if _, err := ls.checker.OwnedPlan(ctx, uid, id); err != nil {
			return nil, err
		}
		log.WorkoutPlanID = &id
	}
	if err := ls.checker.CheckExercises(ctx, logExerciseIDs(req.Exercises)); err != nil {
		return nil, err
	}
	id, err := ls.repo.Create(ctx, log)
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	created, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	return created, nil
}

func (ls *WorkoutLogService) List(ctx context.Context, uid uuid.UUID, req *DateRangeRequest) ([]*entity.WorkoutLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	logs, err := ls.repo.GetByUserID(ctx, uid, req.toRange())
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	return logs, nil
}

func (ls *WorkoutLogService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutLog, error) {
	return ls.checker.OwnedLog(ctx, uid, id)
}

func (ls *WorkoutLogService) Update(ctx context.Context, uid, id uuid.UUID, req *UpdateWorkoutLogRequest) (*entity.WorkoutLog, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := ls.checker.OwnedLog(ctx, uid, id); err != nil {
		return nil, err
	}
	patch := &repository.WorkoutLogPatch{
		ID:       id,
		Duration: req.Duration,
		Notes:    req.Notes,
	}
	if req.CompletedAt != nil {
		completedAt := mustParseTime(*req.CompletedAt)
		patch.CompletedAt = &completedAt
	}
	if req.Exercises != nil {
		if err := ls.checker.CheckExercises(ctx, logExerciseIDs(req.Exercises)); err != nil {
			return nil, err
		}
		patch.Exercises = exerciseLogs(req.Exercises)
	}
	if err := ls.repo.Update(ctx, patch); err != nil {
		return nil, repoError("workout logs", err)
	}
	updated, err := ls.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("workout logs", err)
	}
	return updated, nil
}

// Delete keeps the status of a scheduled workout the log completed.
func (ls *WorkoutLogService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ls.checker.OwnedLog(ctx, uid, id); err != nil {
		return err
	}
	if err := ls.repo.Delete(ctx, id); err != nil {
		return repoError("workout logs", err)
	}
	return nil
}
