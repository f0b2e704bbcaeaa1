package queries

import (
	"context"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/queries/property_mock.go -package=queriesmock

type PropertyQueries interface {
	IsAvailable(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (*AvailabilityView, error)
	// Quote prices a stay after the date checks only; bounds and capacity are left to booking.
	Quote(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (*QuoteView, error)
}

type propertyQueriesImpl struct {
	uow       shared.UnitOfWork
	pricing   reservation.PriceCalculator
	validator *reservation.StayConstraintValidator
	clock     clock.Clock
}

func NewPropertyQueries(uow shared.UnitOfWork, pricing reservation.PriceCalculator, clk clock.Clock) PropertyQueries {
	return &propertyQueriesImpl{
		uow:       uow,
		pricing:   pricing,
		validator: reservation.NewStayConstraintValidator(),
		clock:     clk,
	}
}

func (q *propertyQueriesImpl) IsAvailable(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (*AvailabilityView, error) {
	available, err := shared.NewAvailabilityCheckerForTx(q.uow.Reader()).IsAvailable(ctx, propertyID, period)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		PropertyID: propertyID,
		CheckIn:    period.CheckIn(),
		CheckOut:   period.CheckOut(),
		Available:  available,
	}, nil
}

func (q *propertyQueriesImpl) Quote(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (*QuoteView, error) {
	if err := q.validator.ValidateDates(period, reservation.CalendarDate(q.clock.Now())); err != nil {
		return nil, err
	}

	prop, err := shared.NewAvailabilityCheckerForTx(q.uow.Reader()).LoadProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	breakdown, err := q.pricing.Quote(prop, period)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		PropertyID: propertyID,
		CheckIn:    period.CheckIn(),
		CheckOut:   period.CheckOut(),
		Breakdown:  breakdown,
	}, nil
}
