package entity

import (
	"time"

	"github.com/google/uuid"
)

type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "STRENGTH"
	CategoryCardio      ExerciseCategory = "CARDIO"
	CategoryFlexibility ExerciseCategory = "FLEXIBILITY"
	CategoryBalance     ExerciseCategory = "BALANCE"
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "CHEST"
	MuscleGroupBack      MuscleGroup = "BACK"
	MuscleGroupShoulders MuscleGroup = "SHOULDERS"
	MuscleGroupArms      MuscleGroup = "ARMS"
	MuscleGroupLegs      MuscleGroup = "LEGS"
	MuscleGroupCore      MuscleGroup = "CORE"
	MuscleGroupCardio    MuscleGroup = "CARDIO"
	MuscleGroupFullBody  MuscleGroup = "FULL_BODY"
)

type WorkoutStatus string

const (
	StatusPending   WorkoutStatus = "PENDING"
	StatusCompleted WorkoutStatus = "COMPLETED"
	StatusSkipped   WorkoutStatus = "SKIPPED"
	StatusCancelled WorkoutStatus = "CANCELLED"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Exercise struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    ExerciseCategory `json:"category"`
	MuscleGroup MuscleGroup      `json:"muscleGroup"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type WorkoutPlan struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"userId"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Exercises   []*WorkoutPlanExercise `json:"workoutPlanExercises"`
}

type WorkoutPlanExercise struct {
	ID            uuid.UUID `json:"id"`
	WorkoutPlanID uuid.UUID `json:"workoutPlanId"`
	ExerciseID    uuid.UUID `json:"exerciseId"`
	Sets          int       `json:"sets"`
	Reps          *int      `json:"reps"`
	Weight        *float64  `json:"weight"`
	Duration      *int      `json:"duration"`
	Order         int       `json:"order"`
	Notes         *string   `json:"notes"`
	Exercise      *Exercise `json:"exercise,omitempty"`
}

// PlanSummary is the short form of a plan embedded into schedules and logs.
// Exercises is only filled when a single scheduled workout is requested.
type PlanSummary struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Exercises   []*WorkoutPlanExercise `json:"workoutPlanExercises,omitempty"`
}

type ScheduledWorkout struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"userId"`
	WorkoutPlanID uuid.UUID     `json:"workoutPlanId"`
	ScheduledDate time.Time     `json:"scheduledDate"`
	ScheduledTime string        `json:"scheduledTime"`
	Status        WorkoutStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	WorkoutPlan   *PlanSummary  `json:"workoutPlan,omitempty"`
}

// ScheduleSummary is the short form of a scheduled workout embedded into logs.
type ScheduleSummary struct {
	ID            uuid.UUID `json:"id"`
	ScheduledDate time.Time `json:"scheduledDate"`
	ScheduledTime string    `json:"scheduledTime"`
}

type WorkoutLog struct {
	ID                 uuid.UUID        `json:"id"`
	UserID             uuid.UUID        `json:"userId"`
	ScheduledWorkoutID *uuid.UUID       `json:"scheduledWorkoutId"`
	WorkoutPlanID      *uuid.UUID       `json:"workoutPlanId"`
	CompletedAt        time.Time        `json:"completedAt"`
	Duration           *int             `json:"duration"`
	Notes              *string          `json:"notes"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	ScheduledWorkout   *ScheduleSummary `json:"scheduledWorkout"`
	WorkoutPlan        *PlanSummary     `json:"workoutPlan"`
	ExerciseLogs       []*ExerciseLog   `json:"exerciseLogs"`
}

type ExerciseLog struct {
	ID           uuid.UUID `json:"id"`
	WorkoutLogID uuid.UUID `json:"workoutLogId"`
	ExerciseID   uuid.UUID `json:"exerciseId"`
	Sets         int       `json:"sets"`
	Reps         *int      `json:"reps"`
	Weight       *float64  `json:"weight"`
	Duration     *int      `json:"duration"`
	Notes        *string   `json:"notes"`
	Exercise     *Exercise `json:"exercise,omitempty"`
}

type WorkoutSummary struct {
	TotalWorkouts           int            `json:"totalWorkouts"`
	TotalDuration           int            `json:"totalDuration"`
	AverageDuration         int            `json:"averageDuration"`
	MuscleGroupDistribution map[string]int `json:"muscleGroupDistribution"`
	CategoryDistribution    map[string]int `json:"categoryDistribution"`
}

// DateRange is an optional inclusive interval. Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
