package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestWorkoutsIntegrational(t *testing.T) {
	if os.Getenv("FITTRACK_INTEGRATION") != "1" {
		t.Skip("set FITTRACK_INTEGRATION=1 to run against a postgres container")
	}
	cfg, exerciseID := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg, repository.PoolOptions{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cleanup.CleanUp()
	})

	users := repository.NewUsersRepo(pool)
	plans := repository.NewWorkoutPlansRepo(pool)
	schedules := repository.NewScheduledWorkoutsRepo(pool)
	logs := repository.NewWorkoutLogsRepo(pool)

	user := &entity.User{Email: "it@example.com", Name: "Integration", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, user))
	assert.ErrorIs(t, users.Create(ctx, user), errorvalues.ErrUserExists)
	stored, err := users.FindByEmail(ctx, user.Email)
	require.NoError(t, err)

	var planID uuid.UUID
	t.Run("plan with entries", func(t *testing.T) {
		planID, err = plans.Create(ctx, &entity.WorkoutPlan{
			UserID: stored.ID,
			Name:   "Full body",
			Exercises: []*entity.WorkoutPlanExercise{
				{ExerciseID: exerciseID, Sets: 3, Reps: ptr(10), Order: 2},
				{ExerciseID: exerciseID, Sets: 2, Reps: ptr(8), Order: 1},
			},
		})
		require.NoError(t, err)
		plan, err := plans.GetByID(ctx, planID)
		require.NoError(t, err)
		if assert.Len(t, plan.Exercises, 2) {
			assert.Equal(t, 1, plan.Exercises[0].Order)
			assert.Equal(t, 2, plan.Exercises[1].Order)
		}
	})
	t.Run("unknown exercise leaves nothing behind", func(t *testing.T) {
		_, err := plans.Create(ctx, &entity.WorkoutPlan{
			UserID:    stored.ID,
			Name:      "Broken",
			Exercises: []*entity.WorkoutPlanExercise{{ExerciseID: uuid.New(), Sets: 1, Order: 1}},
		})
		assert.ErrorIs(t, err, errorvalues.ErrExerciseNotFound)
		list, err := plans.GetByUserID(ctx, stored.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	var scheduleID uuid.UUID
	t.Run("log completes schedule", func(t *testing.T) {
		scheduleID, err = schedules.Create(ctx, &entity.ScheduledWorkout{
			UserID:        stored.ID,
			WorkoutPlanID: planID,
			ScheduledDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			ScheduledTime: "09:30",
		})
		require.NoError(t, err)
		_, err = logs.Create(ctx, &entity.WorkoutLog{
			UserID:             stored.ID,
			ScheduledWorkoutID: &scheduleID,
			CompletedAt:        time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
			Duration:           ptr(40),
			ExerciseLogs:       []*entity.ExerciseLog{{ExerciseID: exerciseID, Sets: 3, Reps: ptr(10)}},
		})
		require.NoError(t, err)
		sw, err := schedules.GetByID(ctx, scheduleID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, sw.Status)
	})
	t.Run("deleting plan cascades to schedules and detaches logs", func(t *testing.T) {
		require.NoError(t, plans.Delete(ctx, planID))
		_, err := schedules.GetByID(ctx, scheduleID)
		assert.ErrorIs(t, err, errorvalues.ErrScheduledWorkoutNotFound)
		list, err := logs.GetByUserID(ctx, stored.ID, entity.DateRange{})
		require.NoError(t, err)
		if assert.Len(t, list, 1) {
			assert.Nil(t, list[0].ScheduledWorkoutID)
			assert.Len(t, list[0].ExerciseLogs, 1)
		}
	})
}

func setupTestDB(t *testing.T) (*testPGConfig, uuid.UUID) {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fittrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	exerciseID := uuid.New()
	_, err = conn.Exec(`INSERT INTO exercises (id, name, description, category, muscle_group) VALUES ($1, $2, $3, $4, $5);`,
		exerciseID, "Push-up", "bodyweight press", "STRENGTH", "CHEST")
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{connStr: connStr}, exerciseID
}
