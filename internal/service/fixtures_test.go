package service_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
)

var (
	ownerID    = uuid.New()
	strangerID = uuid.New()

	benchPress = &entity.Exercise{ID: uuid.New(), Name: "Bench Press", Category: entity.CategoryStrength, MuscleGroup: entity.MuscleGroupChest}
	squat      = &entity.Exercise{ID: uuid.New(), Name: "Squat", Category: entity.CategoryStrength, MuscleGroup: entity.MuscleGroupLegs}
	running    = &entity.Exercise{ID: uuid.New(), Name: "Running", Category: entity.CategoryCardio, MuscleGroup: entity.MuscleGroupCardio}
)

type testEnv struct {
	exercises *exercisesRepoMock
	plans     *plansRepoMock
	schedules *schedulesRepoMock
	logs      *logsRepoMock
	checker   *service.ConsistencyChecker
}

func newTestEnv() *testEnv {
	env := &testEnv{
		exercises: newExercisesRepoMock(benchPress, squat, running),
		plans:     newPlansRepoMock(),
		schedules: newSchedulesRepoMock(),
	}
	env.logs = newLogsRepoMock(env.schedules, env.exercises)
	env.checker = service.NewConsistencyChecker(env.exercises, env.plans, env.schedules, env.logs)
	return env
}

func (env *testEnv) ownedPlan(uid uuid.UUID) *entity.WorkoutPlan {
	return env.plans.add(&entity.WorkoutPlan{
		UserID: uid,
		Name:   gofakeit.Company() + " routine",
		Exercises: []*entity.WorkoutPlanExercise{
			{ID: uuid.New(), ExerciseID: squat.ID, Sets: 5, Order: 1, Exercise: squat},
		},
	})
}

func (env *testEnv) ownedSchedule(uid uuid.UUID, plan *entity.WorkoutPlan) *entity.ScheduledWorkout {
	return env.schedules.add(&entity.ScheduledWorkout{
		UserID:        uid,
		WorkoutPlanID: plan.ID,
		ScheduledDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "07:00",
		Status:        entity.StatusPending,
		WorkoutPlan:   &entity.PlanSummary{ID: plan.ID, Name: plan.Name},
	})
}

func ptr[T any](v T) *T {
	return &v
}

func planEntry(id uuid.UUID, order int) service.PlanExerciseRequest {
	return service.PlanExerciseRequest{
		ExerciseID: id.String(),
		Sets:       gofakeit.Number(1, 6),
		Reps:       ptr(gofakeit.Number(1, 20)),
		Order:      order,
	}
}

func logEntry(id uuid.UUID) service.LogExerciseRequest {
	return service.LogExerciseRequest{
		ExerciseID: id.String(),
		Sets:       gofakeit.Number(1, 6),
	}
}
