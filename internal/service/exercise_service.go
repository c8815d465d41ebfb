package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ExerciseService struct {
	repo repository.ExercisesRepositoryI
}

func NewExerciseService(exercisesRepo repository.ExercisesRepositoryI) *ExerciseService {
	return &ExerciseService{
		repo: exercisesRepo,
	}
}

func (es *ExerciseService) List(ctx context.Context, req *ExerciseListRequest) ([]*entity.Exercise, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var filter repository.ExerciseFilter
	if req.Category != "" {
		category := entity.ExerciseCategory(req.Category)
		filter.Category = &category
	}
	if req.MuscleGroup != "" {
		group := entity.MuscleGroup(req.MuscleGroup)
		filter.MuscleGroup = &group
	}
	exercises, err := es.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExerciseService) Get(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	exercise, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}
