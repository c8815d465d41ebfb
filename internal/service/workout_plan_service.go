package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type WorkoutPlanService struct {
	repo    repository.WorkoutPlansRepositoryI
	checker *ConsistencyChecker
}

func NewWorkoutPlanService(plansRepo repository.WorkoutPlansRepositoryI, checker *ConsistencyChecker) *WorkoutPlanService {
	return &WorkoutPlanService{
		repo:    plansRepo,
		checker: checker,
	}
}

func (ps *WorkoutPlanService) Create(ctx context.Context, uid uuid.UUID, req *CreateWorkoutPlanRequest) (*entity.WorkoutPlan, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := ps.checker.CheckExercises(ctx, planExerciseIDs(req.Exercises)); err != nil {
		return nil, err
	}
	id, err := ps.repo.Create(ctx, &entity.WorkoutPlan{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		Exercises:   planExercises(req.Exercises),
	})
	if err != nil {
		return nil, repoError("workout plans", err)
	}
	plan, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("workout plans", err)
	}
	return plan, nil
}

func (ps *WorkoutPlanService) List(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	plans, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("workout plans", err)
	}
	return plans, nil
}

func (ps *WorkoutPlanService) Get(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutPlan, error) {
	return ps.checker.OwnedPlan(ctx, uid, id)
}

func (ps *WorkoutPlanService) Update(ctx context.Context, uid, id uuid.UUID, req *UpdateWorkoutPlanRequest) (*entity.WorkoutPlan, error) {
	req.normalize()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := ps.checker.OwnedPlan(ctx, uid, id); err != nil {
		return nil, err
	}
	patch := &repository.WorkoutPlanPatch{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Exercises != nil {
		if err := ps.checker.CheckExercises(ctx, planExerciseIDs(req.Exercises)); err != nil {
			return nil, err
		}
		patch.Exercises = planExercises(req.Exercises)
	}
	if err := ps.repo.Update(ctx, patch); err != nil {
		return nil, repoError("workout plans", err)
	}
	plan, err := ps.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("workout plans", err)
	}
	return plan, nil
}

// Delete removes the plan with its entries and scheduled workouts. Logs keep their history.
func (ps *WorkoutPlanService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ps.checker.OwnedPlan(ctx, uid, id); err != nil {
		return err
	}
	if err := ps.repo.Delete(ctx, id); err != nil {
		return repoError("workout plans", err)
	}
	return nil
}
