package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/entity"
)

type UserServiceI interface {
	// Validates and normalizes the signup payload, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *SignupRequest) (*entity.User, error)
	// Compares given credentials. Unknown email and wrong password both give ErrWrongCredentials.
	Login(ctx context.Context, req *LoginRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ExerciseServiceI interface {
	List(ctx context.Context, req *ExerciseListRequest) ([]*entity.Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
}

type WorkoutPlanServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateWorkoutPlanRequest) (*entity.WorkoutPlan, error)
	List(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutPlan, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *UpdateWorkoutPlanRequest) (*entity.WorkoutPlan, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type ScheduleServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateScheduleRequest) (*entity.ScheduledWorkout, error)
	List(ctx context.Context, uid uuid.UUID, req *ScheduleListRequest) ([]*entity.ScheduledWorkout, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.ScheduledWorkout, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *UpdateScheduleRequest) (*entity.ScheduledWorkout, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type WorkoutLogServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateWorkoutLogRequest) (*entity.WorkoutLog, error)
	List(ctx context.Context, uid uuid.UUID, req *DateRangeRequest) ([]*entity.WorkoutLog, error)
	Get(ctx context.Context, uid, id uuid.UUID) (*entity.WorkoutLog, error)
	Update(ctx context.Context, uid, id uuid.UUID, req *UpdateWorkoutLogRequest) (*entity.WorkoutLog, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type ReportServiceI interface {
	Summary(ctx context.Context, uid uuid.UUID, req *DateRangeRequest) (*entity.WorkoutSummary, error)
}
