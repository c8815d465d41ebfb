package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateUserExists
)

var errDB = errors.New("db error")

type usersRepoMock struct {
	state mockState
	users map[string]*entity.User
}

func newUsersRepoMock() *usersRepoMock {
	return &usersRepoMock{users: map[string]*entity.User{}}
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateDBError:
		return errDB
	case stateUserExists:
		return errorvalues.ErrUserExists
	}
	if _, ok := m.users[user.Email]; ok {
		return errorvalues.ErrUserExists
	}
	stored := *user
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	m.users[user.Email] = &stored
	return nil
}

func (m *usersRepoMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	user, ok := m.users[email]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return user, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	for _, u := range m.users {
		if u.ID == uid {
			return u, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

type exercisesRepoMock struct {
	state   mockState
	catalog map[uuid.UUID]*entity.Exercise
	asked   [][]uuid.UUID
}

func newExercisesRepoMock(exercises ...*entity.Exercise) *exercisesRepoMock {
	m := &exercisesRepoMock{catalog: map[uuid.UUID]*entity.Exercise{}}
	for _, e := range exercises {
		m.catalog[e.ID] = e
	}
	return m
}

func (m *exercisesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	e, ok := m.catalog[id]
	if !ok {
		return nil, errorvalues.ErrExerciseNotFound
	}
	return e, nil
}

func (m *exercisesRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error) {
	m.asked = append(m.asked, ids)
	if m.state == stateDBError {
		return nil, errDB
	}
	result := make([]*entity.Exercise, 0, len(ids))
	for _, id := range ids {
		if e, ok := m.catalog[id]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *exercisesRepoMock) List(ctx context.Context, filter repository.ExerciseFilter) ([]*entity.Exercise, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	result := make([]*entity.Exercise, 0)
	for _, e := range m.catalog {
		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}
		if filter.MuscleGroup != nil && e.MuscleGroup != *filter.MuscleGroup {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

type plansRepoMock struct {
	state   mockState
	plans   map[uuid.UUID]*entity.WorkoutPlan
	created int
	patches []*repository.WorkoutPlanPatch
	deleted []uuid.UUID
}

func newPlansRepoMock() *plansRepoMock {
	return &plansRepoMock{plans: map[uuid.UUID]*entity.WorkoutPlan{}}
}

func (m *plansRepoMock) add(plan *entity.WorkoutPlan) *entity.WorkoutPlan {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	m.plans[plan.ID] = plan
	return plan
}

func (m *plansRepoMock) Create(ctx context.Context, plan *entity.WorkoutPlan) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errDB
	}
	m.created++
	stored := *plan
	stored.ID = uuid.New()
	m.plans[stored.ID] = &stored
	return stored.ID, nil
}

func (m *plansRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	plan, ok := m.plans[id]
	if !ok {
		return nil, errorvalues.ErrWorkoutPlanNotFound
	}
	return plan, nil
}

func (m *plansRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	result := make([]*entity.WorkoutPlan, 0)
	for _, p := range m.plans {
		if p.UserID == uid {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *plansRepoMock) Update(ctx context.Context, patch *repository.WorkoutPlanPatch) error {
	if m.state == stateDBError {
		return errDB
	}
	m.patches = append(m.patches, patch)
	plan, ok := m.plans[patch.ID]
	if !ok {
		return errorvalues.ErrWorkoutPlanNotFound
	}
	if patch.Name != nil {
		plan.Name = *patch.Name
	}
	if patch.Description != nil {
		plan.Description = patch.Description
	}
	if patch.Exercises != nil {
		plan.Exercises = patch.Exercises
	}
	return nil
}

func (m *plansRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.state == stateDBError {
		return errDB
	}
	if _, ok := m.plans[id]; !ok {
		return errorvalues.ErrWorkoutPlanNotFound
	}
	delete(m.plans, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type schedulesRepoMock struct {
	state      mockState
	schedules  map[uuid.UUID]*entity.ScheduledWorkout
	lastFilter repository.ScheduleFilter
	deleted    []uuid.UUID
}

func newSchedulesRepoMock() *schedulesRepoMock {
	return &schedulesRepoMock{schedules: map[uuid.UUID]*entity.ScheduledWorkout{}}
}

func (m *schedulesRepoMock) add(sw *entity.ScheduledWorkout) *entity.ScheduledWorkout {
	if sw.ID == uuid.Nil {
		sw.ID = uuid.New()
	}
	m.schedules[sw.ID] = sw
	return sw
}

func (m *schedulesRepoMock) Create(ctx context.Context, sw *entity.ScheduledWorkout) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errDB
	}
	stored := *sw
	stored.ID = uuid.New()
	stored.WorkoutPlan = &entity.PlanSummary{ID: sw.WorkoutPlanID}
	m.schedules[stored.ID] = &stored
	return stored.ID, nil
}

func (m *schedulesRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledWorkout, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	sw, ok := m.schedules[id]
	if !ok {
		return nil, errorvalues.ErrScheduledWorkoutNotFound
	}
	copied := *sw
	return &copied, nil
}

func (m *schedulesRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID, filter repository.ScheduleFilter) ([]*entity.ScheduledWorkout, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	m.lastFilter = filter
	result := make([]*entity.ScheduledWorkout, 0)
	for _, sw := range m.schedules {
		if sw.UserID == uid {
			result = append(result, sw)
		}
	}
	return result, nil
}

func (m *schedulesRepoMock) Update(ctx context.Context, patch *repository.ScheduledWorkoutPatch) error {
	if m.state == stateDBError {
		return errDB
	}
	sw, ok := m.schedules[patch.ID]
	if !ok {
		return errorvalues.ErrScheduledWorkoutNotFound
	}
	if patch.ScheduledDate != nil {
		sw.ScheduledDate = *patch.ScheduledDate
	}
	if patch.ScheduledTime != nil {
		sw.ScheduledTime = *patch.ScheduledTime
	}
	if patch.Status != nil {
		sw.Status = *patch.Status
	}
	return nil
}

func (m *schedulesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.state == stateDBError {
		return errDB
	}
	if _, ok := m.schedules[id]; !ok {
		return errorvalues.ErrScheduledWorkoutNotFound
	}
	delete(m.schedules, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// logsRepoMock completes the referenced schedule on Create the way the transactional repository does.
type logsRepoMock struct {
	state     mockState
	logs      map[uuid.UUID]*entity.WorkoutLog
	schedules *schedulesRepoMock
	catalog   *exercisesRepoMock
	lastRange entity.DateRange
}

func newLogsRepoMock(schedules *schedulesRepoMock, catalog *exercisesRepoMock) *logsRepoMock {
	return &logsRepoMock{
		logs:      map[uuid.UUID]*entity.WorkoutLog{},
		schedules: schedules,
		catalog:   catalog,
	}
}

func (m *logsRepoMock) add(log *entity.WorkoutLog) *entity.WorkoutLog {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	m.logs[log.ID] = log
	return log
}

func (m *logsRepoMock) Create(ctx context.Context, log *entity.WorkoutLog) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errDB
	}
	stored := *log
	stored.ID = uuid.New()
	for _, el := range stored.ExerciseLogs {
		el.Exercise = m.catalog.catalog[el.ExerciseID]
	}
	m.logs[stored.ID] = &stored
	if log.ScheduledWorkoutID != nil && m.schedules != nil {
		sw, ok := m.schedules.schedules[*log.ScheduledWorkoutID]
		if !ok {
			return uuid.UUID{}, errorvalues.ErrScheduledWorkoutNotFound
		}
		sw.Status = entity.StatusCompleted
	}
	return stored.ID, nil
}

func (m *logsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	log, ok := m.logs[id]
	if !ok {
		return nil, errorvalues.ErrWorkoutLogNotFound
	}
	return log, nil
}

func (m *logsRepoMock) GetByUserID(ctx context.Context, uid uuid.UUID, dateRange entity.DateRange) ([]*entity.WorkoutLog, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	m.lastRange = dateRange
	result := make([]*entity.WorkoutLog, 0)
	for _, l := range m.logs {
		if l.UserID != uid {
			continue
		}
		if dateRange.From != nil && l.CompletedAt.Before(*dateRange.From) {
			continue
		}
		if dateRange.To != nil && l.CompletedAt.After(*dateRange.To) {
			continue
		}
		result = append(result, l)
	}
	return result, nil
}

func (m *logsRepoMock) Update(ctx context.Context, patch *repository.WorkoutLogPatch) error {
	if m.state == stateDBError {
		return errDB
	}
	log, ok := m.logs[patch.ID]
	if !ok {
		return errorvalues.ErrWorkoutLogNotFound
	}
	if patch.CompletedAt != nil {
		log.CompletedAt = *patch.CompletedAt
	}
	if patch.Duration != nil {
		log.Duration = patch.Duration
	}
	if patch.Notes != nil {
		log.Notes = patch.Notes
	}
	if patch.Exercises != nil {
		log.ExerciseLogs = patch.Exercises
	}
	return nil
}

func (m *logsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.state == stateDBError {
		return errDB
	}
	if _, ok := m.logs[id]; !ok {
		return errorvalues.ErrWorkoutLogNotFound
	}
	delete(m.logs, id)
	return nil
}
