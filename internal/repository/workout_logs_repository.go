package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	workoutLogSelect = `SELECT wl.id, wl.user_id, wl.scheduled_workout_id, wl.workout_plan_id, wl.completed_at, wl.duration, wl.notes, wl.created_at, wl.updated_at,
		sw.scheduled_date, sw.scheduled_time, wp.name, wp.description
	FROM workout_logs wl
	LEFT JOIN scheduled_workouts sw ON sw.id = wl.scheduled_workout_id
	LEFT JOIN workout_plans wp ON wp.id = wl.workout_plan_id`

	exerciseLogsQuery = `SELECT el.id, el.workout_log_id, el.exercise_id, el.sets, el.reps, el.weight, el.duration, el.notes,
		e.name, e.description, e.category, e.muscle_group
	FROM exercise_logs el
	JOIN exercises e ON e.id = el.exercise_id
	WHERE el.workout_log_id = ANY($1)
	ORDER BY el.workout_log_id, el.seq;`
)

type WorkoutLogsRepository struct {
	conn PgConnection
}

func NewWorkoutLogsRepo(conn PgConnection) *WorkoutLogsRepository {
	return &WorkoutLogsRepository{
		conn: conn,
	}
}

func (lr *WorkoutLogsRepository) Create(ctx context.Context, log *entity.WorkoutLog) (uuid.UUID, error) {
	var id uuid.UUID
	err := withTx(ctx, lr.conn, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO workout_logs (user_id, scheduled_workout_id, workout_plan_id, completed_at, duration, notes)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
			log.UserID,
			log.ScheduledWorkoutID,
			log.WorkoutPlanID,
			log.CompletedAt,
			log.Duration,
			log.Notes,
		)
		if err := row.Scan(&id); err != nil {
			return translateLogError("creating workout log error: ", err)
		}
		if err := insertExerciseLogs(ctx, tx, id, log.ExerciseLogs); err != nil {
			return err
		}
		if log.ScheduledWorkoutID == nil {
			return nil
		}
		ct, err := tx.Exec(ctx, `UPDATE scheduled_workouts SET status = $1, updated_at = NOW() WHERE id = $2;`,
			string(entity.StatusCompleted),
			*log.ScheduledWorkoutID,
		)
		if err != nil {
			return errors.New("completing scheduled workout error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrScheduledWorkoutNotFound
		}
		return nil
	})
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

func (lr *WorkoutLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutLog, error) {
	row := lr.conn.QueryRow(ctx, workoutLogSelect+` WHERE wl.id = $1;`, id)
	log, err := scanWorkoutLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWorkoutLogNotFound
		}
		return nil, errors.New("getting workout log by id error: " + err.Error())
	}
	entries, err := lr.exerciseLogsByLog(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	log.ExerciseLogs = entries[id]
	if log.ExerciseLogs == nil {
		log.ExerciseLogs = []*entity.ExerciseLog{}
	}
	return log, nil
}

func (lr *WorkoutLogsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, dateRange entity.DateRange) ([]*entity.WorkoutLog, error) {
	rows, err := lr.conn.Query(ctx, workoutLogSelect+`
	WHERE wl.user_id = $1
		AND ($2::timestamptz IS NULL OR wl.completed_at >= $2)
		AND ($3::timestamptz IS NULL OR wl.completed_at <= $3)
	ORDER BY wl.completed_at DESC;`,
		uid, dateRange.From, dateRange.To,
	)
	if err != nil {
		return nil, errors.New("getting workout logs by uid error: " + err.Error())
	}
	logs := make([]*entity.WorkoutLog, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		log, err := scanWorkoutLog(rows)
		if err != nil {
			rows.Close()
			return nil, errors.New("workout log row parsing error: " + err.Error())
		}
		logs = append(logs, log)
		ids = append(ids, log.ID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout log rows error: " + err.Error())
	}
	if len(logs) == 0 {
		return logs, nil
	}
	entries, err := lr.exerciseLogsByLog(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, log := range logs {
		log.ExerciseLogs = entries[log.ID]
		if log.ExerciseLogs == nil {
			log.ExerciseLogs = []*entity.ExerciseLog{}
		}
	}
	return logs, nil
}

func (lr *WorkoutLogsRepository) Update(ctx context.Context, patch *WorkoutLogPatch) error {
	return withTx(ctx, lr.conn, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `UPDATE workout_logs
			SET completed_at = COALESCE($1, completed_at), duration = COALESCE($2, duration), notes = COALESCE($3, notes), updated_at = NOW()
			WHERE id = $4;`,
			patch.CompletedAt,
			patch.Duration,
			patch.Notes,
			patch.ID,
		)
		if err != nil {
			return errors.New("updating workout log error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrWorkoutLogNotFound
		}
		if patch.Exercises == nil {
			return nil
		}
		if _, err = tx.Exec(ctx, `DELETE FROM exercise_logs WHERE workout_log_id = $1;`, patch.ID); err != nil {
			return errors.New("deleting exercise logs error: " + err.Error())
		}
		return insertExerciseLogs(ctx, tx, patch.ID, patch.Exercises)
	})
}

func (lr *WorkoutLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM workout_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting workout log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrWorkoutLogNotFound
	}
	return nil
}

func insertExerciseLogs(ctx context.Context, tx pgx.Tx, logID uuid.UUID, entries []*entity.ExerciseLog) error {
	for _, ex := range entries {
		_, err := tx.Exec(ctx, `INSERT INTO exercise_logs (workout_log_id, exercise_id, sets, reps, weight, duration, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			logID,
			ex.ExerciseID,
			ex.Sets,
			ex.Reps,
			ex.Weight,
			ex.Duration,
			ex.Notes,
		)
		if err != nil {
			return translateLogError("creating exercise log error: ", err)
		}
	}
	return nil
}

func (lr *WorkoutLogsRepository) exerciseLogsByLog(ctx context.Context, logIDs []uuid.UUID) (map[uuid.UUID][]*entity.ExerciseLog, error) {
	rows, err := lr.conn.Query(ctx, exerciseLogsQuery, logIDs)
	if err != nil {
		return nil, errors.New("getting exercise logs error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[uuid.UUID][]*entity.ExerciseLog, len(logIDs))
	for rows.Next() {
		el := entity.ExerciseLog{Exercise: &entity.Exercise{}}
		err = rows.Scan(&el.ID, &el.WorkoutLogID, &el.ExerciseID, &el.Sets, &el.Reps, &el.Weight, &el.Duration, &el.Notes,
			&el.Exercise.Name, &el.Exercise.Description, &el.Exercise.Category, &el.Exercise.MuscleGroup,
		)
		if err != nil {
			return nil, errors.New("exercise log row parsing error: " + err.Error())
		}
		el.Exercise.ID = el.ExerciseID
		result[el.WorkoutLogID] = append(result[el.WorkoutLogID], &el)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected exercise log rows error: " + err.Error())
	}
	return result, nil
}

func scanWorkoutLog(row pgx.Row) (*entity.WorkoutLog, error) {
	var (
		log           entity.WorkoutLog
		scheduledDate *time.Time
		scheduledTime *string
		planName      *string
		planDesc      *string
	)
	err := row.Scan(&log.ID, &log.UserID, &log.ScheduledWorkoutID, &log.WorkoutPlanID, &log.CompletedAt, &log.Duration, &log.Notes, &log.CreatedAt, &log.UpdatedAt,
		&scheduledDate, &scheduledTime, &planName, &planDesc,
	)
	if err != nil {
		return nil, err
	}
	if log.ScheduledWorkoutID != nil && scheduledDate != nil {
		log.ScheduledWorkout = &entity.ScheduleSummary{
			ID:            *log.ScheduledWorkoutID,
			ScheduledDate: *scheduledDate,
		}
		if scheduledTime != nil {
			log.ScheduledWorkout.ScheduledTime = *scheduledTime
		}
	}
	if log.WorkoutPlanID != nil && planName != nil {
		log.WorkoutPlan = &entity.PlanSummary{
			ID:          *log.WorkoutPlanID,
			Name:        *planName,
			Description: planDesc,
		}
	}
	return &log, nil
}

func translateLogError(prefix string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "workout_logs_scheduled_workout_id_fkey":
			return errorvalues.ErrScheduledWorkoutNotFound
		case "workout_logs_workout_plan_id_fkey":
			return errorvalues.ErrWorkoutPlanNotFound
		case "exercise_logs_exercise_id_fkey":
			return errorvalues.ErrExerciseNotFound
		}
		return errorvalues.ErrUserNotFound
	}
	return errors.New(prefix + err.Error())
}
