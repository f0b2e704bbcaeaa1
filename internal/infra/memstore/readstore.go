package memstore

import (
	"context"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/ptr"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side from the same maps as the unit of work.
type ReadStore struct {
	store *Store
}

func NewReadStore(store *Store) queries.ReservationReadStore {
	return &ReadStore{store: store}
}

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return toView(res), nil
}

func (r *ReadStore) FindAccessFacts(_ context.Context, reservationID uuid.UUID) (*queries.AccessFacts, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res, ok := r.store.reservations[reservationID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	prop, ok := r.store.properties[res.PropertyID()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "property not found")
	}
	return &queries.AccessFacts{
		ReservationID: res.ID(),
		GuestID:       res.UserID(),
		PropertyID:    prop.ID(),
		OwnerID:       prop.OwnerID(),
	}, nil
}

func (r *ReadStore) ListByUser(_ context.Context, userID uuid.UUID, filter queries.ListFilter, today time.Time, after *queries.CursorKey, limit int) ([]*queries.ReservationView, error) {
	var rs []*reservation.Reservation
	switch filter {
	case queries.ListUpcoming:
		rs = r.store.snapshot(func(res *reservation.Reservation) bool {
			return res.UserID() == userID &&
				!res.CheckIn().Before(today) &&
				res.Status() != reservation.StatusCancelled &&
				(after == nil || compareKey(res.CheckIn(), res.ID(), after.Date, after.ID) > 0)
		})
		sortByCheckIn(rs, false)
	case queries.ListPast:
		rs = r.store.snapshot(func(res *reservation.Reservation) bool {
			return res.UserID() == userID &&
				res.CheckOut().Before(today) &&
				(after == nil || compareKey(res.CheckOut(), res.ID(), after.Date, after.ID) < 0)
		})
		sortByCheckOut(rs, true)
	default:
		rs = r.store.snapshot(func(res *reservation.Reservation) bool {
			return res.UserID() == userID &&
				(after == nil || compareKey(res.CheckIn(), res.ID(), after.Date, after.ID) < 0)
		})
		sortByCheckIn(rs, true)
	}
	return toViews(limitSlice(rs, limit)), nil
}

func (r *ReadStore) ListByProperty(_ context.Context, propertyID uuid.UUID, after *queries.CursorKey, limit int) ([]*queries.ReservationView, error) {
	rs := r.store.snapshot(func(res *reservation.Reservation) bool {
		return res.PropertyID() == propertyID &&
			(after == nil || compareKey(res.CheckIn(), res.ID(), after.Date, after.ID) < 0)
	})
	sortByCheckIn(rs, true)
	return toViews(limitSlice(rs, limit)), nil
}

func (r *ReadStore) ListActiveByCheckIn(_ context.Context, propertyID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	rs := r.store.snapshot(func(res *reservation.Reservation) bool {
		return res.PropertyID() == propertyID &&
			res.IsActive() &&
			!res.CheckIn().Before(from) &&
			res.CheckIn().Before(to)
	})
	sortByCheckIn(rs, false)
	return toViews(rs), nil
}

func (r *ReadStore) CountCurrent(_ context.Context, propertyID uuid.UUID, today time.Time) (int64, error) {
	rs := r.store.snapshot(func(res *reservation.Reservation) bool {
		return res.PropertyID() == propertyID &&
			res.Status() != reservation.StatusCancelled &&
			!res.CheckIn().After(today) &&
			!res.CheckOut().Before(today)
	})
	return int64(len(rs)), nil
}

func toViews(rs []*reservation.Reservation) []*queries.ReservationView {
	out := make([]*queries.ReservationView, len(rs))
	for i, res := range rs {
		out[i] = toView(res)
	}
	return out
}

func toView(res *reservation.Reservation) *queries.ReservationView {
	payment := res.Payment()
	return &queries.ReservationView{
		ID:                 res.ID(),
		PropertyID:         res.PropertyID(),
		UserID:             res.UserID(),
		CheckInDate:        res.CheckIn(),
		CheckOutDate:       res.CheckOut(),
		NumberOfDays:       res.NumberOfDays(),
		PricePerDayCents:   res.PricePerDay().Cents(),
		CleaningFeeCents:   res.CleaningFee().Cents(),
		ServiceFeeCents:    res.ServiceFee().Cents(),
		TaxAmountCents:     res.TaxAmount().Cents(),
		TotalPriceCents:    res.TotalPrice().Cents(),
		GuestCount:         res.GuestCount(),
		Status:             res.Status().String(),
		SpecialRequests:    optional(res.SpecialRequests().String()),
		CancellationReason: optional(res.CancellationReason()),
		IsPaid:             payment.IsPaid,
		PaymentDate:        payment.PaidAt,
		PaymentMethod:      optional(payment.Method),
		PaymentReference:   optional(payment.Reference),
		Version:            res.Version(),
		CreatedAt:          res.CreatedAt(),
		UpdatedAt:          res.UpdatedAt(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Of(s)
}
