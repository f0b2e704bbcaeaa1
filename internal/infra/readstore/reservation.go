package readstore

import (
	"context"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationAccess(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationAccessRow, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserParams) ([]sqlc.Reservations, error)
	ListUpcomingReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingReservationsByUserParams) ([]sqlc.Reservations, error)
	ListPastReservationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastReservationsByUserParams) ([]sqlc.Reservations, error)
	ListReservationsByProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByPropertyParams) ([]sqlc.Reservations, error)
	ListActiveReservationsByCheckInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsByCheckInRangeParams) ([]sqlc.Reservations, error)
	CountCurrentReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCurrentReservationsParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return converter.ReservationViewFromRow(row), nil
}

func (r *ReservationReadStore) FindAccessFacts(ctx context.Context, reservationID uuid.UUID) (*queries.AccessFacts, error) {
	row, err := r.queries.GetReservationAccess(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation access", err)
	}
	return &queries.AccessFacts{
		ReservationID: row.ID,
		GuestID:       row.UserID,
		PropertyID:    row.PropertyID,
		OwnerID:       row.OwnerID,
	}, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, filter queries.ListFilter, today time.Time, after *queries.CursorKey, limit int) ([]*queries.ReservationView, error) {
	afterDate, afterID := keysetParams(after)
	maxRows := int32(limit) // #nosec G115 -- clamped by the query layer

	var (
		rows []sqlc.Reservations
		err  error
	)
	switch filter {
	case queries.ListUpcoming:
		rows, err = r.queries.ListUpcomingReservationsByUser(ctx, r.db, sqlc.ListUpcomingReservationsByUserParams{
			UserID:    userID,
			Today:     pgconv.DateToPgtype(today),
			AfterDate: afterDate,
			AfterID:   afterID,
			MaxRows:   maxRows,
		})
	case queries.ListPast:
		rows, err = r.queries.ListPastReservationsByUser(ctx, r.db, sqlc.ListPastReservationsByUserParams{
			UserID:    userID,
			Today:     pgconv.DateToPgtype(today),
			AfterDate: afterDate,
			AfterID:   afterID,
			MaxRows:   maxRows,
		})
	default:
		rows, err = r.queries.ListReservationsByUser(ctx, r.db, sqlc.ListReservationsByUserParams{
			UserID:    userID,
			AfterDate: afterDate,
			AfterID:   afterID,
			MaxRows:   maxRows,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	return converter.ReservationViewsFromRows(rows), nil
}

func (r *ReservationReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID, after *queries.CursorKey, limit int) ([]*queries.ReservationView, error) {
	afterDate, afterID := keysetParams(after)
	rows, err := r.queries.ListReservationsByProperty(ctx, r.db, sqlc.ListReservationsByPropertyParams{
		PropertyID: propertyID,
		AfterDate:  afterDate,
		AfterID:    afterID,
		MaxRows:    int32(limit), // #nosec G115 -- clamped by the query layer
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by property", err)
	}
	return converter.ReservationViewsFromRows(rows), nil
}

func (r *ReservationReadStore) ListActiveByCheckIn(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListActiveReservationsByCheckInRange(ctx, r.db, sqlc.ListActiveReservationsByCheckInRangeParams{
		PropertyID: propertyID,
		RangeStart: pgconv.DateToPgtype(from),
		RangeEnd:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by check-in range", err)
	}
	return converter.ReservationViewsFromRows(rows), nil
}

func (r *ReservationReadStore) CountCurrent(ctx context.Context, propertyID uuid.UUID, today time.Time) (int64, error) {
	count, err := r.queries.CountCurrentReservations(ctx, r.db, sqlc.CountCurrentReservationsParams{
		PropertyID: propertyID,
		Today:      pgconv.DateToPgtype(today),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count current reservations", err)
	}
	return count, nil
}

// keysetParams maps a missing cursor to NULL so the query starts at the first page.
func keysetParams(after *queries.CursorKey) (pgtype.Date, pgtype.UUID) {
	if after == nil {
		return pgtype.Date{}, pgtype.UUID{}
	}
	return pgconv.DateToPgtype(after.Date), pgconv.UUIDToPgtype(after.ID)
}
