package shared

import (
	"context"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityChecker answers whether a property can host a stay. It runs on
// the pool for queries and on the locked transaction during creation.
type AvailabilityChecker struct {
	properties   PropertyReader
	reservations ReservationFinder
}

func NewAvailabilityChecker(properties PropertyReader, reservations ReservationFinder) *AvailabilityChecker {
	return &AvailabilityChecker{
		properties:   properties,
		reservations: reservations,
	}
}

// NewAvailabilityCheckerForTx binds a checker to the repositories of tx.
func NewAvailabilityCheckerForTx(tx Tx) *AvailabilityChecker {
	return NewAvailabilityChecker(tx.Properties(), tx.Reservations())
}

func (c *AvailabilityChecker) IsAvailable(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) (bool, error) {
	prop, err := c.LoadProperty(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return c.IsAvailableFor(ctx, prop, period)
}

// IsAvailableFor reports false, not an error, for properties that are not
// bookable, stays outside the property's bounds, and overlapping bookings.
func (c *AvailabilityChecker) IsAvailableFor(ctx context.Context, prop *property.Property, period reservation.StayPeriod) (bool, error) {
	if !prop.IsAvailable() || !period.IsValid() || !prop.AllowsStayOf(period.Days()) {
		return false, nil
	}
	overlapping, err := c.FindOverlapping(ctx, prop.ID(), period)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func (c *AvailabilityChecker) FindOverlapping(ctx context.Context, propertyID uuid.UUID, period reservation.StayPeriod) ([]*reservation.Reservation, error) {
	found, err := c.reservations.FindOverlapping(ctx, propertyID, period, reservation.ActiveStatuses)
	if err != nil {
		return nil, err
	}
	return reservation.FilterOverlapping(found, period), nil
}

func (c *AvailabilityChecker) LoadProperty(ctx context.Context, propertyID uuid.UUID) (*property.Property, error) {
	prop, err := c.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, MarkNotFound(err, errs.ErrPropertyNotFound)
	}
	return prop, nil
}

// MarkNotFound attaches sentinel to NOT_FOUND repository errors and leaves others untouched.
func MarkNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
