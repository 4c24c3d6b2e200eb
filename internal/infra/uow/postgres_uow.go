package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salon-loyalty/internal/infra/readstore"
	"salon-loyalty/internal/infra/repository"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
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

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
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

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

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

func shouldRetry(err error, attempt, maxRetries int) bool {
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
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
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
	profileRepo  shared.ProfileRepository
	salonRepo    shared.SalonRepository
	visitRepo    shared.VisitRepository
	cardRepo     shared.LoyaltyCardRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Profiles() shared.ProfileRepository {
	if t.profileRepo == nil {
		t.profileRepo = repository.NewProfileRepository(t.uow.q)
	}
	return t.profileRepo
}

func (t *pgTx) Salons() shared.SalonRepository {
	if t.salonRepo == nil {
		t.salonRepo = repository.NewSalonRepository(t.uow.q)
	}
	return t.salonRepo
}

func (t *pgTx) Visits() shared.VisitRepository {
	if t.visitRepo == nil {
		t.visitRepo = repository.NewVisitRepository(t.uow.q)
	}
	return t.visitRepo
}

func (t *pgTx) LoyaltyCards() shared.LoyaltyCardRepository {
	if t.cardRepo == nil {
		t.cardRepo = repository.NewLoyaltyCardRepository(t.uow.q)
	}
	return t.cardRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	salonStore   *readstore.SalonReadStore
	profileStore *readstore.ProfileReadStore
}

func (r *commandReads) salons() *readstore.SalonReadStore {
	if r.salonStore == nil {
		r.salonStore = readstore.NewSalonReadStore(r.uow.q, r.dbtx)
	}
	return r.salonStore
}

func (r *commandReads) SalonByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.SalonSnapshot, error) {
	s, err := r.salons().FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &shared.SalonSnapshot{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		QRCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
	}, nil
}

func (r *commandReads) SalonByID(ctx context.Context, id uuid.UUID) (*shared.SalonSnapshot, error) {
	s, err := r.salons().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SalonSnapshot{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		QRCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
	}, nil
}

func (r *commandReads) ProfileByID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	if r.profileStore == nil {
		r.profileStore = readstore.NewProfileReadStore(r.uow.q, r.dbtx)
	}
	p, err := r.profileStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ProfileSnapshot{ID: p.ID, Role: p.Role}, nil
}
