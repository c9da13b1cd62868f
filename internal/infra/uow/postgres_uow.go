package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how long a write waits for the owner's schedule lock and
// how often it is retried when PostgreSQL gives up on it.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
	// LockTimeout is applied with SET LOCAL, so it only covers this
	// transaction. Zero leaves the server default.
	LockTimeout time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:  3,
	Base:        50 * time.Millisecond,
	LockTimeout: 3 * time.Second,
}

func (p RetryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.MaxRetries && isRetryableError(err)
}

// backoff doubles per attempt and adds up to 20% jitter so writers queued on
// the same owner do not wake in lockstep.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.Base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *query.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) *PostgresUoW {
	return &PostgresUoW{pool: pool, q: q, policy: DefaultRetryPolicy}
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// Within runs fn in a READ COMMITTED transaction. Overlap safety comes from
// the advisory lock taken by Tx.LockOwnerSchedule, not from the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if !u.policy.shouldRetry(err, attempt) {
			break
		}

		wait := u.policy.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	if isRetryableError(err) {
		slog.Error("transaction failed after max retries", "attempts", u.policy.MaxRetries+1, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt owns exactly one pgx transaction so nothing is deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = u.setLockTimeout(ctx, pgxTx)
	if err == nil {
		err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	}
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

func (u *PostgresUoW) setLockTimeout(ctx context.Context, tx pgx.Tx) error {
	if u.policy.LockTimeout <= 0 {
		return nil
	}
	// SET does not take bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.policy.LockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	appointmentRepo shared.AppointmentRepository
	clientRepo      shared.ClientRepository
	petRepo         shared.PetRepository
	serviceRepo     shared.ServiceRepository
	settingsRepo    shared.SettingsRepository
	userRepo        shared.UserRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) LockOwnerSchedule(ctx context.Context, ownerID uuid.UUID) error {
	if err := t.uow.q.LockOwnerSchedule(ctx, t.dbtx, ownerID); err != nil {
		return infra.WrapRepoErr("failed to lock owner schedule", err)
	}
	return nil
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q, t.dbtx)
	}
	return t.appointmentRepo
}

func (t *pgTx) Clients() shared.ClientRepository {
	if t.clientRepo == nil {
		t.clientRepo = repository.NewClientRepository(t.uow.q, t.dbtx)
	}
	return t.clientRepo
}

func (t *pgTx) Pets() shared.PetRepository {
	if t.petRepo == nil {
		t.petRepo = repository.NewPetRepository(t.uow.q, t.dbtx)
	}
	return t.petRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.uow.q, t.dbtx)
	}
	return t.serviceRepo
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settingsRepo == nil {
		t.settingsRepo = repository.NewSettingsRepository(t.uow.q, t.dbtx)
	}
	return t.settingsRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			q:    t.uow.q,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}
