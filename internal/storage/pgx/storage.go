package pgx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 10
	connectDelay    = time.Second
	connectMaxDelay = 10 * time.Second
	pingTimeout     = 5 * time.Second
)

type Storage struct {
	pool      *pgxpool.Pool
	txManager *TxManager
}

func NewPgxStorage(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{
		pool:      pool,
		txManager: NewTxManager(pool, pgx.TxOptions{IsoLevel: pgx.Serializable}),
	}, nil
}

// Connect opens the pool and waits until the database answers a ping.
func Connect(ctx context.Context, connString string, logger *slog.Logger) (*Storage, error) {
	st, err := NewPgxStorage(ctx, connString)
	if err != nil {
		return nil, err
	}

	err = retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()
			return st.Ping(pingCtx)
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(connectDelay),
		retry.MaxDelay(connectMaxDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database not ready", "attempt", n+1, "error", err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return st, nil
}

func (s *Storage) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.txManager.WithTx(ctx, fn)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// interface and func ex --> to avoid duplicating code

type execer interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...any) pgx.Row
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

func (s *Storage) getExecutor(ctx context.Context) execer {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.pool
}
