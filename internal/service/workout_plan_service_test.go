package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkoutPlan(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		plan, err := ps.Create(ctx, ownerID, &service.CreateWorkoutPlanRequest{
			Name:        "  Push day  ",
			Description: ptr("  chest  "),
			Exercises:   []service.PlanExerciseRequest{planEntry(benchPress.ID, 1), planEntry(squat.ID, 2)},
		})
		require.NoError(t, err)
		assert.Equal(t, "Push day", plan.Name)
		assert.Equal(t, "chest", *plan.Description)
		assert.Equal(t, ownerID, plan.UserID)
		assert.Len(t, plan.Exercises, 2)
	})
	t.Run("duplicate order writes nothing", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		_, err := ps.Create(ctx, ownerID, &service.CreateWorkoutPlanRequest{
			Name:      "Push day",
			Exercises: []service.PlanExerciseRequest{planEntry(benchPress.ID, 1), planEntry(squat.ID, 1)},
		})
		verr, ok := errorvalues.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "exercises", verr.Errors[0].Field)
		assert.Zero(t, env.plans.created)
		assert.Empty(t, env.exercises.asked)
	})
	t.Run("unknown exercises writes nothing", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		_, err := ps.Create(ctx, ownerID, &service.CreateWorkoutPlanRequest{
			Name:      "Push day",
			Exercises: []service.PlanExerciseRequest{planEntry(uuid.New(), 1), planEntry(uuid.New(), 2)},
		})
		verr, ok := errorvalues.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, errorvalues.MsgInvalidExerciseIDs, verr.Message)
		assert.Len(t, verr.Errors, 2)
		assert.Zero(t, env.plans.created)
	})
	t.Run("db error", func(t *testing.T) {
		env := newTestEnv()
		env.plans.state = stateDBError
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		_, err := ps.Create(ctx, ownerID, &service.CreateWorkoutPlanRequest{
			Name:      "Push day",
			Exercises: []service.PlanExerciseRequest{planEntry(squat.ID, 1)},
		})
		assert.Error(t, err)
	})
}

func TestWorkoutPlanReads(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ps := service.NewWorkoutPlanService(env.plans, env.checker)
	mine := env.ownedPlan(ownerID)
	env.ownedPlan(strangerID)
	t.Run("list only own plans", func(t *testing.T) {
		plans, err := ps.List(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, mine.ID, plans[0].ID)
	})
	t.Run("get foreign plan is not found", func(t *testing.T) {
		_, err := ps.Get(ctx, strangerID, mine.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutPlanNotFound)
	})
}

func TestUpdateWorkoutPlan(t *testing.T) {
	ctx := context.Background()
	t.Run("rename keeps exercises", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		plan := env.ownedPlan(ownerID)
		updated, err := ps.Update(ctx, ownerID, plan.ID, &service.UpdateWorkoutPlanRequest{Name: ptr(" Leg day ")})
		require.NoError(t, err)
		assert.Equal(t, "Leg day", updated.Name)
		assert.Len(t, updated.Exercises, 1)
		require.Len(t, env.plans.patches, 1)
		assert.Nil(t, env.plans.patches[0].Exercises)
		assert.Empty(t, env.exercises.asked)
	})
	t.Run("exercises are replaced", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		plan := env.ownedPlan(ownerID)
		updated, err := ps.Update(ctx, ownerID, plan.ID, &service.UpdateWorkoutPlanRequest{
			Exercises: []service.PlanExerciseRequest{planEntry(running.ID, 1), planEntry(benchPress.ID, 2)},
		})
		require.NoError(t, err)
		require.Len(t, updated.Exercises, 2)
		assert.Equal(t, running.ID, updated.Exercises[0].ExerciseID)
	})
	t.Run("foreign plan", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		plan := env.ownedPlan(ownerID)
		_, err := ps.Update(ctx, strangerID, plan.ID, &service.UpdateWorkoutPlanRequest{Name: ptr("Stolen")})
		assert.ErrorIs(t, err, errorvalues.ErrWorkoutPlanNotFound)
		assert.Empty(t, env.plans.patches)
	})
	t.Run("unknown replacement exercise", func(t *testing.T) {
		env := newTestEnv()
		ps := service.NewWorkoutPlanService(env.plans, env.checker)
		plan := env.ownedPlan(ownerID)
		_, err := ps.Update(ctx, ownerID, plan.ID, &service.UpdateWorkoutPlanRequest{
			Exercises: []service.PlanExerciseRequest{planEntry(uuid.New(), 1)},
		})
		_, ok := errorvalues.AsValidationError(err)
		assert.True(t, ok)
		assert.Empty(t, env.plans.patches)
	})
}

func TestDeleteWorkoutPlan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	ps := service.NewWorkoutPlanService(env.plans, env.checker)
	plan := env.ownedPlan(ownerID)
	t.Run("foreign", func(t *testing.T) {
		assert.ErrorIs(t, ps.Delete(ctx, strangerID, plan.ID), errorvalues.ErrWorkoutPlanNotFound)
		assert.Empty(t, env.plans.deleted)
	})
	t.Run("owner", func(t *testing.T) {
		assert.NoError(t, ps.Delete(ctx, ownerID, plan.ID))
		assert.Equal(t, []uuid.UUID{plan.ID}, env.plans.deleted)
	})
	t.Run("already gone", func(t *testing.T) {
		assert.ErrorIs(t, ps.Delete(ctx, ownerID, plan.ID), errorvalues.ErrWorkoutPlanNotFound)
	})
}
