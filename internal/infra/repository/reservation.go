package repository

import (
	"context"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation_mock.go -package=repositorymock

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	FindOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingReservationsParams) ([]sqlc.Reservations, error)
	UpdateReservationState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStateParams) (int64, error)
	ListCompletableReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletableReservationsParams) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation row", err)
	}
	return res, nil
}

// FindOverlapping uses the inclusive predicate check_in <= requested.check_out
// AND check_out >= requested.check_in.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod, statuses []reservation.Status) ([]*reservation.Reservation, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}

	rows, err := r.queries.FindOverlappingReservations(ctx, r.db, sqlc.FindOverlappingReservationsParams{
		PropertyID:   propertyID,
		Statuses:     names,
		CheckOutDate: pgconv.DateToPgtype(period.CheckOut()),
		CheckInDate:  pgconv.DateToPgtype(period.CheckIn()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}

	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation rows", err)
	}
	return out, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation, expectedVersion int32) error {
	affected, err := r.queries.UpdateReservationState(ctx, r.db, converter.ReservationToUpdateParams(res, expectedVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation version is stale", nil, infra.KindConflict)
	}

	res.AdvanceVersion()
	return nil
}

func (r *ReservationRepository) ListCompletable(ctx context.Context, before time.Time, limit int) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListCompletableReservations(ctx, r.db, sqlc.ListCompletableReservationsParams{
		Before:  pgconv.DateToPgtype(before),
		MaxRows: int32(limit), // #nosec G115 -- batch size comes from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completable reservations", err)
	}

	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation rows", err)
	}
	return out, nil
}
