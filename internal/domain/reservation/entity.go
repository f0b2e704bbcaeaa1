package reservation

import (
	"time"

	"stay-booking/internal/domain/property"

	"github.com/google/uuid"
)

type Reservation struct {
	id                 uuid.UUID
	propertyID         uuid.UUID
	userID             uuid.UUID
	period             StayPeriod
	numberOfDays       int
	pricePerDay        Money
	cleaningFee        Money
	serviceFee         Money
	taxAmount          Money
	totalPrice         Money
	guestCount         int
	status             Status
	specialRequests    Note
	cancellationReason string
	payment            Payment
	version            int32
	createdAt          time.Time
	updatedAt          time.Time
}

// NewReservation builds a PENDING reservation with the price frozen from quote.
// The caller is expected to have validated the request and checked availability.
func NewReservation(
	prop *property.Property,
	userID uuid.UUID,
	period StayPeriod,
	guestCount int,
	specialRequests Note,
	quote PriceBreakdown,
	now time.Time,
) (*Reservation, error) {
	if !period.IsValid() {
		return nil, newValidationError(KindInvalidDateRange, "%s", period.String())
	}
	if guestCount < 1 {
		return nil, newValidationError(KindOccupancyExceeded, "at least one guest is required")
	}

	return &Reservation{
		id:              uuid.New(),
		propertyID:      prop.ID(),
		userID:          userID,
		period:          period,
		numberOfDays:    period.Days(),
		pricePerDay:     quote.PricePerDay,
		cleaningFee:     quote.CleaningFee,
		serviceFee:      quote.ServiceFee,
		taxAmount:       quote.TaxAmount,
		totalPrice:      quote.Total,
		guestCount:      guestCount,
		status:          StatusPending,
		specialRequests: specialRequests,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	UserID             uuid.UUID
	Period             StayPeriod
	NumberOfDays       int
	PricePerDay        Money
	CleaningFee        Money
	ServiceFee         Money
	TaxAmount          Money
	TotalPrice         Money
	GuestCount         int
	Status             Status
	SpecialRequests    Note
	CancellationReason string
	Payment            Payment
	Version            int32
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *Reservation {
	return &Reservation{
		id:                 p.ID,
		propertyID:         p.PropertyID,
		userID:             p.UserID,
		period:             p.Period,
		numberOfDays:       p.NumberOfDays,
		pricePerDay:        p.PricePerDay,
		cleaningFee:        p.CleaningFee,
		serviceFee:         p.ServiceFee,
		taxAmount:          p.TaxAmount,
		totalPrice:         p.TotalPrice,
		guestCount:         p.GuestCount,
		status:             p.Status,
		specialRequests:    p.SpecialRequests,
		cancellationReason: p.CancellationReason,
		payment:            p.Payment,
		version:            p.Version,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

// Subtotal is derived; only the fee fields and the total are stored.
func (r *Reservation) Subtotal() Money {
	return r.pricePerDay.Times(int64(r.numberOfDays))
}

// PriceIsConsistent reports whether the stored total equals the sum of its parts.
func (r *Reservation) PriceIsConsistent() bool {
	sum := r.Subtotal().Add(r.cleaningFee).Add(r.serviceFee).Add(r.taxAmount)
	return sum == r.totalPrice && r.numberOfDays == r.period.Days()
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) OverlapsWith(period StayPeriod) bool {
	return Overlaps(r.period, period)
}

func (r *Reservation) BelongsTo(userID uuid.UUID) bool {
	return r.userID == userID
}

// AdvanceVersion is called by stores after a successful versioned update.
func (r *Reservation) AdvanceVersion() {
	r.version++
}

// Clone returns an independent copy, used by stores that keep entities in memory.
func (r *Reservation) Clone() *Reservation {
	c := *r
	if r.payment.PaidAt != nil {
		paidAt := *r.payment.PaidAt
		c.payment.PaidAt = &paidAt
	}
	return &c
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) PropertyID() uuid.UUID      { return r.propertyID }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) Period() StayPeriod         { return r.period }
func (r *Reservation) CheckIn() time.Time         { return r.period.CheckIn() }
func (r *Reservation) CheckOut() time.Time        { return r.period.CheckOut() }
func (r *Reservation) NumberOfDays() int          { return r.numberOfDays }
func (r *Reservation) PricePerDay() Money         { return r.pricePerDay }
func (r *Reservation) CleaningFee() Money         { return r.cleaningFee }
func (r *Reservation) ServiceFee() Money          { return r.serviceFee }
func (r *Reservation) TaxAmount() Money           { return r.taxAmount }
func (r *Reservation) TotalPrice() Money          { return r.totalPrice }
func (r *Reservation) GuestCount() int            { return r.guestCount }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) SpecialRequests() Note      { return r.specialRequests }
func (r *Reservation) CancellationReason() string { return r.cancellationReason }
func (r *Reservation) Payment() Payment           { return r.payment }
func (r *Reservation) Version() int32             { return r.version }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
