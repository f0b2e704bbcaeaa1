package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, userID uuid.UUID, filter ListFilter, after string, limit int) (*Page, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, after string, limit int) (*Page, error)
	MonthlyCalendar(ctx context.Context, propertyID uuid.UUID, year int, month time.Month) (*CalendarView, error)
	CountCurrent(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MarkNotFound(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, filter ListFilter, after string, limit int) (*Page, error) {
	if filter == "" {
		filter = ListAll
	}
	if !filter.IsValid() {
		return nil, errs.Wrap(reservation.ErrValidation, "unknown filter "+string(filter))
	}
	key, err := decodeOptionalCursor(after)
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	today := reservation.CalendarDate(q.clock.Now())
	items, err := q.store.ListByUser(ctx, userID, filter, today, key, limit)
	if err != nil {
		return nil, err
	}
	return newPage(items, limit, filter.SortDate), nil
}

func (q *reservationQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, after string, limit int) (*Page, error) {
	key, err := decodeOptionalCursor(after)
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit)
	items, err := q.store.ListByProperty(ctx, propertyID, key, limit)
	if err != nil {
		return nil, err
	}
	return newPage(items, limit, ListAll.SortDate), nil
}

// MonthlyCalendar lists active reservations whose check-in falls in the month.
func (q *reservationQueriesImpl) MonthlyCalendar(ctx context.Context, propertyID uuid.UUID, year int, month time.Month) (*CalendarView, error) {
	if month < time.January || month > time.December {
		return nil, errs.Wrap(reservation.ErrValidation, "month out of range")
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	items, err := q.store.ListActiveByCheckIn(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*ReservationView{}
	}
	return &CalendarView{
		PropertyID:   propertyID,
		Year:         year,
		Month:        month,
		Reservations: items,
	}, nil
}

func (q *reservationQueriesImpl) CountCurrent(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return q.store.CountCurrent(ctx, propertyID, reservation.CalendarDate(q.clock.Now()))
}

func decodeOptionalCursor(after string) (*CursorKey, error) {
	if after == "" {
		return nil, nil
	}
	return DecodeAfterCursor(after)
}

// newPage emits a next cursor only when the page is full.
func newPage(items []*ReservationView, limit int, sortDate func(*ReservationView) time.Time) *Page {
	if items == nil {
		items = []*ReservationView{}
	}
	page := &Page{Items: items}
	if len(items) == limit {
		last := items[len(items)-1]
		next := EncodeAfterCursor(sortDate(last), last.ID)
		page.NextCursor = &next
	}
	return page
}
