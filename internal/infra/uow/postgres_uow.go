package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, nil, fn)
}

// WithinPropertyLock takes a transaction-scoped advisory lock keyed by the
// property id before fn runs. Concurrent bookings for the same property queue
// on the lock; other properties are unaffected.
func (u *PostgresUoW) WithinPropertyLock(ctx context.Context, propertyID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	lock := func(ctx context.Context, db sqlc.DBTX) error {
		if err := u.q.AcquirePropertyLock(ctx, db, propertyID.String()); err != nil {
			return infra.WrapRepoErr("failed to acquire property lock", err)
		}
		return nil
	}
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, lock, fn)
}

func (u *PostgresUoW) Reader() shared.Tx {
	return &pgTx{dbtx: u.pool, uow: u}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(
	ctx context.Context,
	options pgx.TxOptions,
	before func(ctx context.Context, db sqlc.DBTX) error,
	fn func(ctx context.Context, tx shared.Tx) error,
) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = u.runAttempt(ctx, pgxTx, before, fn)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, backoffBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runAttempt(
	ctx context.Context,
	pgxTx pgx.Tx,
	before func(ctx context.Context, db sqlc.DBTX) error,
	fn func(ctx context.Context, tx shared.Tx) error,
) error {
	if before != nil {
		if err := before(ctx, pgxTx); err != nil {
			return err
		}
	}
	return fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
}

func shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	propertyRepo    shared.PropertyReader
	reservationRepo shared.ReservationRepository
}

func (t *pgTx) Properties() shared.PropertyReader {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository(t.uow.q, t.dbtx)
	}
	return t.propertyRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}
