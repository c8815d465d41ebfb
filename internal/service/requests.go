package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6,max=100"`
	Name     string `json:"name" validate:"min=2,max=50"`
}

func (r *SignupRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ExerciseListRequest struct {
	Category    string `json:"category" validate:"omitempty,oneof=STRENGTH CARDIO FLEXIBILITY BALANCE"`
	MuscleGroup string `json:"muscleGroup" validate:"omitempty,oneof=CHEST BACK SHOULDERS ARMS LEGS CORE CARDIO FULL_BODY"`
}

type PlanExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" validate:"required,uuid"`
	Sets       int      `json:"sets" validate:"gt=0"`
	Reps       *int     `json:"reps" validate:"omitempty,gt=0"`
	Weight     *float64 `json:"weight" validate:"omitempty,gt=0"`
	Duration   *int     `json:"duration" validate:"omitempty,gt=0"`
	Order      int      `json:"order" validate:"min=1"`
	Notes      *string  `json:"notes" validate:"omitempty,max=500"`
}

type CreateWorkoutPlanRequest struct {
	Name        string                `json:"name" validate:"min=3,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
	Exercises   []PlanExerciseRequest `json:"exercises" validate:"min=1,max=20,dive"`
}

func (r *CreateWorkoutPlanRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = trimOptional(r.Description)
}

// UpdateWorkoutPlanRequest is a partial update. A supplied exercise list replaces the stored one.
type UpdateWorkoutPlanRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=3,max=100"`
	Description *string               `json:"description" validate:"omitempty,max=500"`
	Exercises   []PlanExerciseRequest `json:"exercises" validate:"omitempty,min=1,max=20,dive"`
}

func (r *UpdateWorkoutPlanRequest) normalize() {
	r.Name = trimOptional(r.Name)
	r.Description = trimOptional(r.Description)
}

type CreateScheduleRequest struct {
	WorkoutPlanID string `json:"workoutPlanId" validate:"required,uuid"`
	ScheduledDate string `json:"scheduledDate" validate:"iso_datetime"`
	ScheduledTime string `json:"scheduledTime" validate:"hhmm"`
}

func (r *CreateScheduleRequest) normalize() {
	r.ScheduledTime = strings.TrimSpace(r.ScheduledTime)
}

type UpdateScheduleRequest struct {
	ScheduledDate *string `json:"scheduledDate" validate:"omitempty,iso_datetime"`
	ScheduledTime *string `json:"scheduledTime" validate:"omitempty,hhmm"`
	Status        *string `json:"status" validate:"omitempty,oneof=PENDING COMPLETED SKIPPED CANCELLED"`
}

func (r *UpdateScheduleRequest) normalize() {
	r.ScheduledTime = trimOptional(r.ScheduledTime)
}

// DateRangeRequest carries the startDate/endDate query filters.
type DateRangeRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,iso_date"`
	EndDate   string `json:"endDate" validate:"omitempty,iso_date"`
}

type ScheduleListRequest struct {
	Status    string `json:"status" validate:"omitempty,oneof=PENDING COMPLETED SKIPPED CANCELLED"`
	StartDate string `json:"startDate" validate:"omitempty,iso_date"`
	EndDate   string `json:"endDate" validate:"omitempty,iso_date"`
}

func (r ScheduleListRequest) toFilter() repository.ScheduleFilter {
	filter := repository.ScheduleFilter{
		Range: DateRangeRequest{StartDate: r.StartDate, EndDate: r.EndDate}.toRange(),
	}
	if r.Status != "" {
		status := entity.WorkoutStatus(r.Status)
		filter.Status = &status
	}
	return filter
}

type LogExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" validate:"required,uuid"`
	Sets       int      `json:"sets" validate:"gt=0"`
	Reps       *int     `json:"reps" validate:"omitempty,gt=0"`
	Weight     *float64 `json:"weight" validate:"omitempty,gt=0"`
	Duration   *int     `json:"duration" validate:"omitempty,gt=0"`
	Notes      *string  `json:"notes" validate:"omitempty,max=500"`
}

type CreateWorkoutLogRequest struct {
	ScheduledWorkoutID *string              `json:"scheduledWorkoutId" validate:"omitempty,uuid"`
	WorkoutPlanID      *string              `json:"workoutPlanId" validate:"omitempty,uuid"`
	CompletedAt        string               `json:"completedAt" validate:"iso_datetime"`
	Duration           *int                 `json:"duration" validate:"omitempty,gt=0"`
	Notes              *string              `json:"notes" validate:"omitempty,max=1000"`
	Exercises          []LogExerciseRequest `json:"exercises" validate:"min=1,max=30,dive"`
}

// UpdateWorkoutLogRequest is a partial update. References stay as they were at creation.
type UpdateWorkoutLogRequest struct {
	CompletedAt *string              `json:"completedAt" validate:"omitempty,iso_datetime"`
	Duration    *int                 `json:"duration" validate:"omitempty,gt=0"`
	Notes       *string              `json:"notes" validate:"omitempty,max=1000"`
	Exercises   []LogExerciseRequest `json:"exercises" validate:"omitempty,min=1,max=30,dive"`
}

func (r DateRangeRequest) toRange() entity.DateRange {
	var dr entity.DateRange
	if r.StartDate != "" {
		if from, err := parseFilterDate(r.StartDate, false); err == nil {
			dr.From = &from
		}
	}
	if r.EndDate != "" {
		if to, err := parseFilterDate(r.EndDate, true); err == nil {
			dr.To = &to
		}
	}
	return dr
}

func planExercises(entries []PlanExerciseRequest) []*entity.WorkoutPlanExercise {
	result := make([]*entity.WorkoutPlanExercise, 0, len(entries))
	for _, e := range entries {
		result = append(result, &entity.WorkoutPlanExercise{
			ExerciseID: uuid.MustParse(e.ExerciseID),
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Duration:   e.Duration,
			Order:      e.Order,
			Notes:      e.Notes,
		})
	}
	return result
}

func exerciseLogs(entries []LogExerciseRequest) []*entity.ExerciseLog {
	result := make([]*entity.ExerciseLog, 0, len(entries))
	for _, e := range entries {
		result = append(result, &entity.ExerciseLog{
			ExerciseID: uuid.MustParse(e.ExerciseID),
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Duration:   e.Duration,
			Notes:      e.Notes,
		})
	}
	return result
}

func planExerciseIDs(entries []PlanExerciseRequest) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, uuid.MustParse(e.ExerciseID))
	}
	return ids
}

func logExerciseIDs(entries []LogExerciseRequest) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, uuid.MustParse(e.ExerciseID))
	}
	return ids
}

// mustParseTime is only called on values that passed iso_datetime.
func mustParseTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
