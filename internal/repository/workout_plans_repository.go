package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const planExercisesQuery = `SELECT wpe.id, wpe.workout_plan_id, wpe.exercise_id, wpe.sets, wpe.reps, wpe.weight, wpe.duration, wpe.position, wpe.notes,
		e.name, e.description, e.category, e.muscle_group
	FROM workout_plan_exercises wpe
	JOIN exercises e ON e.id = wpe.exercise_id
	WHERE wpe.workout_plan_id = ANY($1)
	ORDER BY wpe.workout_plan_id, wpe.position;`

type WorkoutPlansRepository struct {
	conn PgConnection
}

func NewWorkoutPlansRepo(conn PgConnection) *WorkoutPlansRepository {
	return &WorkoutPlansRepository{
		conn: conn,
	}
}

func (pr *WorkoutPlansRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) (uuid.UUID, error) {
	var id uuid.UUID
	err := withTx(ctx, pr.conn, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO workout_plans (user_id, name, description) VALUES ($1, $2, $3) RETURNING id;`,
			plan.UserID,
			plan.Name,
			plan.Description,
		)
		if err := row.Scan(&id); err != nil {
			return translatePlanError("creating workout plan error: ", err)
		}
		return insertPlanExercises(ctx, tx, id, plan.Exercises)
	})
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

func (pr *WorkoutPlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	plan := entity.WorkoutPlan{ID: id}
	row := pr.conn.QueryRow(ctx, `SELECT user_id, name, description, created_at, updated_at FROM workout_plans WHERE id = $1;`, id)
	if err := row.Scan(&plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutPlanNotFound
		}
		return nil, errors.New("getting workout plan by id error: " + err.Error())
	}
	entries, err := pr.exercisesByPlan(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	plan.Exercises = entries[id]
	if plan.Exercises == nil {
		plan.Exercises = []*entity.WorkoutPlanExercise{}
	}
	return &plan, nil
}

func (pr *WorkoutPlansRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WorkoutPlan, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, user_id, name, description, created_at, updated_at
		FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting workout plans by uid error: " + err.Error())
	}
	plans := make([]*entity.WorkoutPlan, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		p := entity.WorkoutPlan{}
		if err = rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			rows.Close()
			return nil, errors.New("workout plan row parsing error: " + err.Error())
		}
		plans = append(plans, &p)
		ids = append(ids, p.ID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout plan rows error: " + err.Error())
	}
	if len(plans) == 0 {
		return plans, nil
	}
	entries, err := pr.exercisesByPlan(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		p.Exercises = entries[p.ID]
		if p.Exercises == nil {
			p.Exercises = []*entity.WorkoutPlanExercise{}
		}
	}
	return plans, nil
}

// Update applies the patch and, when exercises are given, swaps the whole entry set in one transaction.
func (pr *WorkoutPlansRepository) Update(ctx context.Context, patch *WorkoutPlanPatch) error {
	return withTx(ctx, pr.conn, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `UPDATE workout_plans SET name = COALESCE($1, name), description = COALESCE($2, description), updated_at = NOW() WHERE id = $3;`,
			patch.Name,
			patch.Description,
			patch.ID,
		)
		if err != nil {
			return errors.New("updating workout plan error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrWorkoutPlanNotFound
		}
		if patch.Exercises == nil {
			return nil
		}
		if _, err = tx.Exec(ctx, `DELETE FROM workout_plan_exercises WHERE workout_plan_id = $1;`, patch.ID); err != nil {
			return errors.New("deleting workout plan exercises error: " + err.Error())
		}
		return insertPlanExercises(ctx, tx, patch.ID, patch.Exercises)
	})
}

func (pr *WorkoutPlansRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM workout_plans WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting workout plan error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutPlanNotFound
	}
	return nil
}

func insertPlanExercises(ctx context.Context, tx pgx.Tx, planID uuid.UUID, entries []*entity.WorkoutPlanExercise) error {
	for _, ex := range entries {
		_, err := tx.Exec(ctx, `INSERT INTO workout_plan_exercises (workout_plan_id, exercise_id, sets, reps, weight, duration, position, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			planID,
			ex.ExerciseID,
			ex.Sets,
			ex.Reps,
			ex.Weight,
			ex.Duration,
			ex.Order,
			ex.Notes,
		)
		if err != nil {
			return translatePlanError("creating workout plan exercise error: ", err)
		}
	}
	return nil
}

func (pr *WorkoutPlansRepository) exercisesByPlan(ctx context.Context, planIDs []uuid.UUID) (map[uuid.UUID][]*entity.WorkoutPlanExercise, error) {
	rows, err := pr.conn.Query(ctx, planExercisesQuery, planIDs)
	if err != nil {
		return nil, errors.New("getting workout plan exercises error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[uuid.UUID][]*entity.WorkoutPlanExercise, len(planIDs))
	for rows.Next() {
		wpe := entity.WorkoutPlanExercise{Exercise: &entity.Exercise{}}
		err = rows.Scan(&wpe.ID, &wpe.WorkoutPlanID, &wpe.ExerciseID, &wpe.Sets, &wpe.Reps, &wpe.Weight, &wpe.Duration, &wpe.Order, &wpe.Notes,
			&wpe.Exercise.Name, &wpe.Exercise.Description, &wpe.Exercise.Category, &wpe.Exercise.MuscleGroup,
		)
		if err != nil {
			return nil, errors.New("workout plan exercise row parsing error: " + err.Error())
		}
		wpe.Exercise.ID = wpe.ExerciseID
		result[wpe.WorkoutPlanID] = append(result[wpe.WorkoutPlanID], &wpe)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout plan exercise rows error: " + err.Error())
	}
	return result, nil
}

func translatePlanError(prefix string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			if pgErr.ConstraintName == "workout_plan_exercises_exercise_id_fkey" {
				return errorvalues.ErrExerciseNotFound
			}
			return errorvalues.ErrUserNotFound
		case pgUniqueViolation:
			return errorvalues.NewValidationError(errorvalues.MsgValidationFailed, errorvalues.FieldError{
				Field:   "exercises",
				Message: "Each exercise must have a unique order number",
			})
		}
	}
	return errors.New(prefix + err.Error())
}
