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

const scheduledWorkoutColumns = `sw.id, sw.user_id, sw.workout_plan_id, sw.scheduled_date, sw.scheduled_time, sw.status, sw.created_at, sw.updated_at,
		wp.name, wp.description`

type ScheduledWorkoutsRepository struct {
	conn PgConnection
}

func NewScheduledWorkoutsRepo(conn PgConnection) *ScheduledWorkoutsRepository {
	return &ScheduledWorkoutsRepository{
		conn: conn,
	}
}

func (sr *ScheduledWorkoutsRepository) Create(ctx context.Context, sw *entity.ScheduledWorkout) (uuid.UUID, error) {
	var id uuid.UUID
	status := sw.Status
	if status == "" {
		status = entity.StatusPending
	}
	row := sr.conn.QueryRow(ctx, `INSERT INTO scheduled_workouts (user_id, workout_plan_id, scheduled_date, scheduled_time, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		sw.UserID,
		sw.WorkoutPlanID,
		sw.ScheduledDate,
		sw.ScheduledTime,
		string(status),
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrWorkoutPlanNotFound
		}
		return uuid.UUID{}, errors.New("creating scheduled workout error: " + err.Error())
	}
	return id, nil
}

func (sr *ScheduledWorkoutsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledWorkout, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+scheduledWorkoutColumns+`
		FROM scheduled_workouts sw
		JOIN workout_plans wp ON wp.id = sw.workout_plan_id
		WHERE sw.id = $1;`, id)
	sw, err := scanScheduledWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrScheduledWorkoutNotFound
		}
		return nil, errors.New("getting scheduled workout by id error: " + err.Error())
	}
	return sw, nil
}

func (sr *ScheduledWorkoutsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, filter ScheduleFilter) ([]*entity.ScheduledWorkout, error) {
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	rows, err := sr.conn.Query(ctx, `SELECT `+scheduledWorkoutColumns+`
		FROM scheduled_workouts sw
		JOIN workout_plans wp ON wp.id = sw.workout_plan_id
		WHERE sw.user_id = $1
			AND ($2::text IS NULL OR sw.status = $2)
			AND ($3::timestamptz IS NULL OR sw.scheduled_date >= $3)
			AND ($4::timestamptz IS NULL OR sw.scheduled_date <= $4)
		ORDER BY sw.scheduled_date ASC;`,
		uid, status, filter.Range.From, filter.Range.To,
	)
	if err != nil {
		return nil, errors.New("getting scheduled workouts by uid error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.ScheduledWorkout, 0)
	for rows.Next() {
		sw, err := scanScheduledWorkout(rows)
		if err != nil {
			return nil, errors.New("scheduled workout row parsing error: " + err.Error())
		}
		result = append(result, sw)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected scheduled workout rows error: " + err.Error())
	}
	return result, nil
}

func (sr *ScheduledWorkoutsRepository) Update(ctx context.Context, patch *ScheduledWorkoutPatch) error {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	ct, err := sr.conn.Exec(ctx, `UPDATE scheduled_workouts
		SET scheduled_date = COALESCE($1, scheduled_date), scheduled_time = COALESCE($2, scheduled_time), status = COALESCE($3, status), updated_at = NOW()
		WHERE id = $4;`,
		patch.ScheduledDate,
		patch.ScheduledTime,
		status,
		patch.ID,
	)
	if err != nil {
		return errors.New("updating scheduled workout error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrScheduledWorkoutNotFound
	}
	return nil
}

func (sr *ScheduledWorkoutsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM scheduled_workouts WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting scheduled workout error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrScheduledWorkoutNotFound
	}
	return nil
}

func scanScheduledWorkout(row pgx.Row) (*entity.ScheduledWorkout, error) {
	sw := entity.ScheduledWorkout{WorkoutPlan: &entity.PlanSummary{}}
	err := row.Scan(&sw.ID, &sw.UserID, &sw.WorkoutPlanID, &sw.ScheduledDate, &sw.ScheduledTime, &sw.Status, &sw.CreatedAt, &sw.UpdatedAt,
		&sw.WorkoutPlan.Name, &sw.WorkoutPlan.Description,
	)
	if err != nil {
		return nil, err
	}
	sw.WorkoutPlan.ID = sw.WorkoutPlanID
	return &sw, nil
}
