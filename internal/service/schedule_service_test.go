package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()
	t.Run("pending with normalized time", func(t *testing.T) {
		env := newTestEnv()
		ss := service.NewScheduleService(env.schedules, env.checker)
		plan := env.ownedPlan(ownerID)
		sw, err := ss.Create(ctx, ownerID, &service.CreateScheduleRequest{
			WorkoutPlanID: plan.ID.String(),
			ScheduledDate: "2025-06-02T00:00:00Z",
			ScheduledTime: " 7:30 ",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, sw.Status)
		assert.Equal(t, "07:30", sw.ScheduledTime)
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), sw.ScheduledDate.UTC())
		assert.Equal(t, ownerID, sw.UserID)
	})
	t.Run("foreign plan", func(t *testing.T) {
		env := newTestEnv()
		ss := service.NewScheduleService(env.schedules, env.checker)
		plan := env.ownedPlan(strangerID)
		_, err := ss.Create(ctx, ownerID, &service.CreateScheduleRequest{
			WorkoutPlanID: plan.ID.String(),
			ScheduledDate: "2025-06-02T00:00:00Z",
			ScheduledTime: "07:30",
		})
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutPlanNotFound)
		assert.Empty(t, env.schedules.schedules)
	})
	t.Run("bad time", func(t *testing.T) {
		env := newTestEnv()
		ss := service.NewScheduleService(env.schedules, env.checker)
		plan := env.ownedPlan(ownerID)
		_, err := ss.Create(ctx, ownerID, &service.CreateScheduleRequest{
			WorkoutPlanID: plan.ID.String(),
			ScheduledDate: "2025-06-02T00:00:00Z",
			ScheduledTime: "24:00",
		})
		verr, ok := errorvalues.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "scheduledTime", verr.Errors[0].Field)
	})
}

func TestListSchedules(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ss := service.NewScheduleService(env.schedules, env.checker)
	env.ownedSchedule(ownerID, env.ownedPlan(ownerID))
	env.ownedSchedule(strangerID, env.ownedPlan(strangerID))

	list, err := ss.List(ctx, ownerID, &service.ScheduleListRequest{
		Status:    "PENDING",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NotNil(t, env.schedules.lastFilter.Status)
	assert.Equal(t, entity.StatusPending, *env.schedules.lastFilter.Status)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *env.schedules.lastFilter.Range.From)
	assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC), *env.schedules.lastFilter.Range.To)

	_, err = ss.List(ctx, ownerID, &service.ScheduleListRequest{Status: "DONE"})
	_, ok := errorvalues.AsValidationError(err)
	assert.True(t, ok)
}

func TestGetSchedule(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ss := service.NewScheduleService(env.schedules, env.checker)
	plan := env.ownedPlan(ownerID)
	sw := env.ownedSchedule(ownerID, plan)

	got, err := ss.Get(ctx, ownerID, sw.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WorkoutPlan)
	assert.Equal(t, plan.Name, got.WorkoutPlan.Name)
	assert.Equal(t, plan.Exercises, got.WorkoutPlan.Exercises)

	_, err = ss.Get(ctx, strangerID, sw.ID)
	assert.ErrorIs(t, err, errorvalues.ErrScheduledWorkoutNotFound)
}

func TestUpdateSchedule(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ss := service.NewScheduleService(env.schedules, env.checker)
	sw := env.ownedSchedule(ownerID, env.ownedPlan(ownerID))

	t.Run("status and time", func(t *testing.T) {
		updated, err := ss.Update(ctx, ownerID, sw.ID, &service.UpdateScheduleRequest{
			ScheduledTime: ptr("9:05"),
			Status:        ptr("SKIPPED"),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusSkipped, updated.Status)
		assert.Equal(t, "09:05", updated.ScheduledTime)
		assert.Equal(t, sw.ScheduledDate, updated.ScheduledDate)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := ss.Update(ctx, ownerID, sw.ID, &service.UpdateScheduleRequest{Status: ptr("DONE")})
		verr, ok := errorvalues.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "status", verr.Errors[0].Field)
	})
	t.Run("foreign", func(t *testing.T) {
		_, err := ss.Update(ctx, strangerID, sw.ID, &service.UpdateScheduleRequest{Status: ptr("CANCELLED")})
		assert.ErrorIs(t, err, errorvalues.ErrScheduledWorkoutNotFound)
	})
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ss := service.NewScheduleService(env.schedules, env.checker)
	sw := env.ownedSchedule(ownerID, env.ownedPlan(ownerID))

	assert.ErrorIs(t, ss.Delete(ctx, strangerID, sw.ID), errorvalues.ErrScheduledWorkoutNotFound)
	assert.NoError(t, ss.Delete(ctx, ownerID, sw.ID))
	assert.Equal(t, []uuid.UUID{sw.ID}, env.schedules.deleted)
	assert.ErrorIs(t, ss.Delete(ctx, ownerID, sw.ID), errorvalues.ErrScheduledWorkoutNotFound)
}
