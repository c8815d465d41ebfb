package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	var e entity.Exercise
	row := er.conn.QueryRow(ctx, `SELECT id, name, description, category, muscle_group, created_at FROM exercises WHERE id = $1;`, id)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return &e, nil
}

func (er *ExercisesRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error) {
	if len(ids) == 0 {
		return []*entity.Exercise{}, nil
	}
	rows, err := er.conn.Query(ctx, `SELECT id, name, description, category, muscle_group, created_at
		FROM exercises WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, errors.New("getting exercises by ids error: " + err.Error())
	}
	return scanExercises(rows)
}

func (er *ExercisesRepository) List(ctx context.Context, filter ExerciseFilter) ([]*entity.Exercise, error) {
	var category, muscleGroup *string
	if filter.Category != nil {
		c := string(*filter.Category)
		category = &c
	}
	if filter.MuscleGroup != nil {
		mg := string(*filter.MuscleGroup)
		muscleGroup = &mg
	}
	rows, err := er.conn.Query(ctx, `SELECT id, name, description, category, muscle_group, created_at
		FROM exercises
		WHERE ($1::text IS NULL OR category = $1) AND ($2::text IS NULL OR muscle_group = $2)
		ORDER BY name;`, category, muscleGroup)
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	return scanExercises(rows)
}

func scanExercises(rows pgx.Rows) ([]*entity.Exercise, error) {
	defer rows.Close()
	result := make([]*entity.Exercise, 0)
	for rows.Next() {
		e := entity.Exercise{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup, &e.CreatedAt); err != nil {
			return nil, errors.New("exercise row parsing error: " + err.Error())
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected exercise rows error: " + err.Error())
	}
	return result, nil
}
