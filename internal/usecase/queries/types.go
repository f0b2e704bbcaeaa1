package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=types.go -destination=../../../tests/mock/queries/types_mock.go -package=queriesmock

// ReservationView represents read-optimized reservation data. Dates are
// calendar days at UTC midnight.
type ReservationView struct {
	ID                 uuid.UUID  `json:"id"`
	PropertyID         uuid.UUID  `json:"property_id"`
	UserID             uuid.UUID  `json:"user_id"`
	CheckInDate        time.Time  `json:"check_in_date"`
	CheckOutDate       time.Time  `json:"check_out_date"`
	NumberOfDays       int        `json:"number_of_days"`
	PricePerDayCents   int64      `json:"price_per_day_cents"`
	CleaningFeeCents   int64      `json:"cleaning_fee_cents"`
	ServiceFeeCents    int64      `json:"service_fee_cents"`
	TaxAmountCents     int64      `json:"tax_amount_cents"`
	TotalPriceCents    int64      `json:"total_price_cents"`
	GuestCount         int        `json:"guest_count"`
	Status             string     `json:"status"`
	SpecialRequests    *string    `json:"special_requests,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	IsPaid             bool       `json:"is_paid"`
	PaymentDate        *time.Time `json:"payment_date,omitempty"`
	PaymentMethod      *string    `json:"payment_method,omitempty"`
	PaymentReference   *string    `json:"payment_reference,omitempty"`
	Version            int32      `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ListFilter string

const (
	ListAll      ListFilter = "all"
	ListUpcoming ListFilter = "upcoming"
	ListPast     ListFilter = "past"
)

func (f ListFilter) IsValid() bool {
	switch f {
	case ListAll, ListUpcoming, ListPast:
		return true
	}
	return false
}

// SortDate is the date the filter orders by: check-out for past stays,
// check-in otherwise.
func (f ListFilter) SortDate(v *ReservationView) time.Time {
	if f == ListPast {
		return v.CheckOutDate
	}
	return v.CheckInDate
}

type Page struct {
	Items      []*ReservationView `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

type CalendarView struct {
	PropertyID   uuid.UUID          `json:"property_id"`
	Year         int                `json:"year"`
	Month        time.Month         `json:"month"`
	Reservations []*ReservationView `json:"reservations"`
}

type AvailabilityView struct {
	PropertyID uuid.UUID `json:"property_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Available  bool      `json:"available"`
}

type QuoteView struct {
	PropertyID uuid.UUID                  `json:"property_id"`
	CheckIn    time.Time                  `json:"check_in"`
	CheckOut   time.Time                  `json:"check_out"`
	Breakdown  reservation.PriceBreakdown `json:"breakdown"`
}

// AccessFacts are the ids an access decision about a reservation needs.
type AccessFacts struct {
	ReservationID uuid.UUID
	GuestID       uuid.UUID
	PropertyID    uuid.UUID
	OwnerID       uuid.UUID
}

// CursorKey is the keyset position of the last row of a page.
type CursorKey struct {
	Date time.Time
	ID   uuid.UUID
}

// ReservationReadStore is implemented by infra/readstore (Postgres) and
// infra/memstore. Missing rows are NOT_FOUND repository errors.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAccessFacts(ctx context.Context, reservationID uuid.UUID) (*AccessFacts, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter, today time.Time, after *CursorKey, limit int) ([]*ReservationView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, after *CursorKey, limit int) ([]*ReservationView, error)
	// ListActiveByCheckIn returns PENDING and CONFIRMED reservations with from <= check_in < to.
	ListActiveByCheckIn(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
	CountCurrent(ctx context.Context, propertyID uuid.UUID, today time.Time) (int64, error)
}
