package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/limbo/fittrack/pkg/cleanup"
)

type PoolOptions struct {
	TracingEnabled bool
	// Pool stats are exported when set
	Registerer prometheus.Registerer
}

// NewPool opens and pings the shared pgx pool. The pool is closed by cleanup.CleanUp.
func NewPool(ctx context.Context, cfg DBConfig, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if opts.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if opts.Registerer != nil {
		collector := pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": poolConfig.ConnConfig.Database})
		if err = opts.Registerer.Register(collector); err != nil {
			slog.Warn("pgx pool metrics not registered", slog.String("error", err.Error()))
		}
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// withTx runs fn inside a transaction. The transaction is rolled back when fn fails.
func withTx(ctx context.Context, conn PgConnection, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			slog.Error("transaction rollback error", slog.String("error", rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
