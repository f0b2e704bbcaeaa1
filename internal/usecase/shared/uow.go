package shared

import (
	"context"
	"time"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: READ COMMITTED transaction, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinPropertyLock: Within plus an exclusive per-property lock held until commit or rollback
	WithinPropertyLock(ctx context.Context, propertyID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
	// Reader: non-transactional access for reads that need no isolation
	Reader() Tx
}

type Tx interface {
	Properties() PropertyReader
	Reservations() ReservationRepository
}

// PropertyReader returns a NOT_FOUND repository error for unknown ids.
type PropertyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
}

type ReservationFinder interface {
	FindOverlapping(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod, statuses []reservation.Status) ([]*reservation.Reservation, error)
}

type ReservationRepository interface {
	ReservationFinder
	Create(ctx context.Context, res *reservation.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// Update persists status and payment fields when the stored version equals
	// expectedVersion, and returns a CONFLICT repository error otherwise.
	Update(ctx context.Context, res *reservation.Reservation, expectedVersion int32) error
	ListCompletable(ctx context.Context, before time.Time, limit int) ([]*reservation.Reservation, error)
}
