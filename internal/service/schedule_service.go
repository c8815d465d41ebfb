package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ScheduleService struct {
	repo    repository.ScheduledWorkoutsRepositoryI
	checker *ConsistencyChecker
}

func NewScheduleService(schedulesRepo repository.ScheduledWorkoutsRepositoryI, checker *ConsistencyChecker) *ScheduleService {
	return &ScheduleService{
		repo:    schedulesRepo,
		checker: checker,
	}
}

func (ss *ScheduleService) Create(ctx context.Context, uid uuid.UUID, req *CreateScheduleRequest) (*entity.ScheduledWorkout, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	planID := uuid.MustParse(req.WorkoutPlanID)
	if _, err := ss.checker.OwnedPlan(ctx, uid, planID); err != nil {
		return nil, err
	}
	id, err := ss.repo.Create(ctx, &entity.ScheduledWorkout{
		UserID:        uid,
		WorkoutPlanID: planID,
		ScheduledDate: mustParseTime(req.ScheduledDate),
		ScheduledTime: normalizeTime(req.ScheduledTime),
		Status:        entity.StatusPending,
	})
	if err != nil {
		return nil, repoError("scheduled workouts", err)
	}
	sw, err := ss.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("scheduled workouts", err)
	}
	return sw, nil
}

func (ss *ScheduleService) List(ctx context.Context, uid uuid.UUID, req *ScheduleListRequest) ([]*entity.ScheduledWorkout, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	list, err := ss.repo.GetByUserID(ctx, uid, req.toFilter())
	if err != nil {
		return nil, repoError("scheduled workouts", err)
	}
	return list, nil
}

// Get returns the scheduled workout together with the plan's ordered exercises.
func (ss *ScheduleService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.ScheduledWorkout, error) {
	sw, err := ss.checker.OwnedSchedule(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	plan, err := ss.checker.OwnedPlan(ctx, uid, sw.WorkoutPlanID)
	if err != nil {
		return nil, err
	}
	sw.WorkoutPlan = &entity.PlanSummary{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Exercises:   plan.Exercises,
	}
	return sw, nil
}

func (ss *ScheduleService) Update(ctx context.Context, uid, id uuid.UUID, req *UpdateScheduleRequest) (*entity.ScheduledWorkout, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := ss.checker.OwnedSchedule(ctx, uid, id); err != nil {
		return nil, err
	}
	patch := &repository.ScheduledWorkoutPatch{ID: id}
	if req.ScheduledDate != nil {
		date := mustParseTime(*req.ScheduledDate)
		patch.ScheduledDate = &date
	}
	if req.ScheduledTime != nil {
		t := normalizeTime(*req.ScheduledTime)
		patch.ScheduledTime = &t
	}
	if req.Status != nil {
		status := entity.WorkoutStatus(*req.Status)
		patch.Status = &status
	}
	if err := ss.repo.Update(ctx, patch); err != nil {
		return nil, repoError("scheduled workouts", err)
	}
	sw, err := ss.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("scheduled workouts", err)
	}
	return sw, nil
}

func (ss *ScheduleService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ss.checker.OwnedSchedule(ctx, uid, id); err != nil {
		return err
	}
	if err := ss.repo.Delete(ctx, id); err != nil {
		return repoError("scheduled workouts", err)
	}
	return nil
}
