//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/reservation"
	reqdto "stay-booking/internal/handler/dto/request"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder prices reservations with the default fee schedule against
// a property priced at PricePerDayCents.
type ReservationBuilder struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	UserID             uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	PricePerDayCents   int64
	Bedrooms           *int
	GuestCount         int
	SpecialRequests    string
	Status             reservation.Status
	CancellationReason string
	Payment            reservation.Payment
	Version            int32
	CreatedAt          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	today := reservation.CalendarDate(time.Now().UTC())
	return &ReservationBuilder{
		ID:               uuid.New(),
		PropertyID:       uuid.New(),
		UserID:           uuid.New(),
		CheckIn:          today.AddDate(0, 0, 10),
		CheckOut:         today.AddDate(0, 0, 13),
		PricePerDayCents: 10000,
		GuestCount:       2,
		SpecialRequests:  "Late arrival",
		Status:           reservation.StatusPending,
		Version:          1,
		CreatedAt:        time.Now().UTC(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Period() reservation.StayPeriod {
	return reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) Quote() reservation.PriceBreakdown {
	prop := property.Reconstruct(property.Params{
		ID:               b.PropertyID,
		PricePerDayCents: b.PricePerDayCents,
		Bedrooms:         b.Bedrooms,
		Status:           property.StatusAvailable,
	})
	quote, err := reservation.NewPricingCalculator(reservation.DefaultFeeSchedule()).Quote(prop, b.Period())
	if err != nil {
		return reservation.PriceBreakdown{}
	}
	return quote
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	quote := b.Quote()
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		UserID:             b.UserID,
		Period:             b.Period(),
		NumberOfDays:       b.Period().Days(),
		PricePerDay:        quote.PricePerDay,
		CleaningFee:        quote.CleaningFee,
		ServiceFee:         quote.ServiceFee,
		TaxAmount:          quote.TaxAmount,
		TotalPrice:         quote.Total,
		GuestCount:         b.GuestCount,
		Status:             b.Status,
		SpecialRequests:    reservation.NewNote(b.SpecialRequests),
		CancellationReason: b.CancellationReason,
		Payment:            b.Payment,
		Version:            b.Version,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	})
}

func (b *ReservationBuilder) BuildRow() sqlc.Reservations {
	quote := b.Quote()
	return sqlc.Reservations{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		UserID:             b.UserID,
		CheckInDate:        pgconv.DateToPgtype(b.CheckIn),
		CheckOutDate:       pgconv.DateToPgtype(b.CheckOut),
		NumberOfDays:       int32(quote.Days),
		PricePerDayCents:   quote.PricePerDay.Cents(),
		CleaningFeeCents:   quote.CleaningFee.Cents(),
		ServiceFeeCents:    quote.ServiceFee.Cents(),
		TaxAmountCents:     quote.TaxAmount.Cents(),
		TotalPriceCents:    quote.Total.Cents(),
		GuestCount:         int32(b.GuestCount),
		Status:             b.Status.String(),
		SpecialRequests:    pgconv.StringToNullableText(b.SpecialRequests),
		CancellationReason: pgconv.StringToNullableText(b.CancellationReason),
		IsPaid:             b.Payment.IsPaid,
		PaymentDate:        pgconv.TimePtrToPgtype(b.Payment.PaidAt),
		PaymentMethod:      pgconv.StringToNullableText(b.Payment.Method),
		PaymentReference:   pgconv.StringToNullableText(b.Payment.Reference),
		Version:            b.Version,
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	quote := b.Quote()
	view := &queries.ReservationView{
		ID:               b.ID,
		PropertyID:       b.PropertyID,
		UserID:           b.UserID,
		CheckInDate:      reservation.CalendarDate(b.CheckIn),
		CheckOutDate:     reservation.CalendarDate(b.CheckOut),
		NumberOfDays:     quote.Days,
		PricePerDayCents: quote.PricePerDay.Cents(),
		CleaningFeeCents: quote.CleaningFee.Cents(),
		ServiceFeeCents:  quote.ServiceFee.Cents(),
		TaxAmountCents:   quote.TaxAmount.Cents(),
		TotalPriceCents:  quote.Total.Cents(),
		GuestCount:       b.GuestCount,
		Status:           b.Status.String(),
		IsPaid:           b.Payment.IsPaid,
		PaymentDate:      b.Payment.PaidAt,
		Version:          b.Version,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
	if b.SpecialRequests != "" {
		s := b.SpecialRequests
		view.SpecialRequests = &s
	}
	return view
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PropertyID:      b.PropertyID,
		CheckInDate:     b.CheckIn.Format(reservation.DateLayout),
		CheckOutDate:    b.CheckOut.Format(reservation.DateLayout),
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithPropertyID(id uuid.UUID) *ReservationBuilder {
	b.PropertyID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithDates(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithGuestCount(n int) *ReservationBuilder {
	b.GuestCount = n
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithVersion(v int32) *ReservationBuilder {
	b.Version = v
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	paidAt := b.CreatedAt
	b.Status = reservation.StatusConfirmed
	b.Payment = reservation.Payment{IsPaid: true, PaidAt: &paidAt}
	return b
}

func (b *ReservationBuilder) AsCancelled(reason string) *ReservationBuilder {
	b.Status = reservation.StatusCancelled
	b.CancellationReason = reason
	return b
}
