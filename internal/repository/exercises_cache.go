package repository

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
	"github.com/google/uuid"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	megabyte             = 1024 * 1024
	exerciseCacheExpire  = 60 * 60 // seconds
	defaultCacheSizeInMB = 8
)

// CachedExercisesRepo keeps catalog rows in memory. The catalog is read-only for the API,
// so entries only expire to pick up reseeding.
type CachedExercisesRepo struct {
	next  ExercisesRepositoryI
	cache *freecache.Cache
}

func NewCachedExercisesRepo(next ExercisesRepositoryI, sizeInMB int) *CachedExercisesRepo {
	if sizeInMB <= 0 {
		sizeInMB = defaultCacheSizeInMB
	}
	return &CachedExercisesRepo{
		next:  next,
		cache: freecache.NewCache(sizeInMB * megabyte),
	}
}

func (c *CachedExercisesRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	if e, ok := c.get(id); ok {
		return e, nil
	}
	e, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(e)
	return e, nil
}

func (c *CachedExercisesRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Exercise, error) {
	result := make([]*entity.Exercise, 0, len(ids))
	misses := make([]uuid.UUID, 0)
	for _, id := range ids {
		if e, ok := c.get(id); ok {
			result = append(result, e)
			continue
		}
		misses = append(misses, id)
	}
	if len(misses) == 0 {
		return result, nil
	}
	found, err := c.next.GetByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, e := range found {
		c.set(e)
	}
	return append(result, found...), nil
}

func (c *CachedExercisesRepo) List(ctx context.Context, filter ExerciseFilter) ([]*entity.Exercise, error) {
	exercises, err := c.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		c.set(e)
	}
	return exercises, nil
}

func (c *CachedExercisesRepo) get(id uuid.UUID) (*entity.Exercise, bool) {
	raw, err := c.cache.Get(id[:])
	if err != nil {
		return nil, false
	}
	var e entity.Exercise
	if err = sonic.Unmarshal(raw, &e); err != nil {
		slog.Warn("corrupted exercise cache entry", slog.String("id", id.String()))
		c.cache.Del(id[:])
		return nil, false
	}
	return &e, true
}

func (c *CachedExercisesRepo) set(e *entity.Exercise) {
	raw, err := sonic.Marshal(e)
	if err != nil {
		return
	}
	if err = c.cache.Set(e.ID[:], raw, exerciseCacheExpire); err != nil {
		slog.Warn("exercise not cached", slog.String("id", e.ID.String()), slog.String("error", err.Error()))
	}
}
