package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database. Email must already be normalized
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login and duplicate checks
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ExerciseFilter struct {
	Category    *entity.ExerciseCategory
	MuscleGroup *entity.MuscleGroup
}

type ExercisesRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error)
	// Returns the exercises that exist among ids, in no particular order
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]*entity.Exercise, error)
}

type WorkoutPlanPatch struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	// nil leaves entries untouched, otherwise all entries are replaced
	Exercises []*entity.WorkoutPlanExercise
}

type WorkoutPlansRepositoryI interface {
	// Creates plan with its exercise entries in one transaction
	Create(ctx context.Context, plan *entity.WorkoutPlan) (uuid.UUID, error)
	// Returns plan with entries ordered by position
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)
	// Lists plans owned by uid, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error)
	Update(ctx context.Context, patch *WorkoutPlanPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleFilter struct {
	Status *entity.WorkoutStatus
	Range  entity.DateRange
}

type ScheduledWorkoutPatch struct {
	ID            uuid.UUID
	ScheduledDate *time.Time
	ScheduledTime *string
	Status        *entity.WorkoutStatus
}

type ScheduledWorkoutsRepositoryI interface {
	Create(ctx context.Context, sw *entity.ScheduledWorkout) (uuid.UUID, error)
	// Returns scheduled workout with plan summary
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledWorkout, error)
	// Lists scheduled workouts of uid ordered by date
	GetByUserID(ctx context.Context, uid uuid.UUID, filter ScheduleFilter) ([]*entity.ScheduledWorkout, error)
	Update(ctx context.Context, patch *ScheduledWorkoutPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkoutLogPatch struct {
	ID          uuid.UUID
	CompletedAt *time.Time
	Duration    *int
	Notes       *string
	// nil leaves entries untouched, otherwise all entries are replaced
	Exercises []*entity.ExerciseLog
}

type WorkoutLogsRepositoryI interface {
	// Creates log with its entries. If the log references a scheduled workout,
	// that workout is marked COMPLETED in the same transaction
	Create(ctx context.Context, log *entity.WorkoutLog) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error)
	// Lists logs of uid with exercise entries, newest first. Bounds are inclusive
	GetByUserID(ctx context.Context, uid uuid.UUID, dateRange entity.DateRange) ([]*entity.WorkoutLog, error)
	Update(ctx context.Context, patch *WorkoutLogPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
