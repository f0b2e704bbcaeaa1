package reservation

import (
	"time"

	"stay-booking/internal/domain/property"
)

// StayConstraintValidator checks a booking request against the calendar and the
// property's stay and occupancy bounds. Rules run in a fixed order and the
// first violation is returned.
type StayConstraintValidator struct{}

func NewStayConstraintValidator() *StayConstraintValidator {
	return &StayConstraintValidator{}
}

func (v *StayConstraintValidator) Validate(prop *property.Property, period StayPeriod, guestCount int, today time.Time) error {
	if err := v.ValidateDates(period, today); err != nil {
		return err
	}

	days := period.Days()
	if minDays := prop.MinStayDays(); minDays != nil && days < *minDays {
		return newValidationError(KindStayTooShort, "%d day(s), minimum %d", days, *minDays)
	}
	if maxDays := prop.MaxStayDays(); maxDays != nil && days > *maxDays {
		return newValidationError(KindStayTooLong, "%d day(s), maximum %d", days, *maxDays)
	}

	if guestCount < 1 {
		return newValidationError(KindOccupancyExceeded, "at least one guest is required")
	}
	if maxGuests := prop.MaxGuests(); maxGuests != nil && guestCount > *maxGuests {
		return newValidationError(KindOccupancyExceeded, "%d guest(s), maximum %d", guestCount, *maxGuests)
	}

	return nil
}

// ValidateDates runs only the calendar rules. Quotes and availability
// lookups use it where no guest count is known.
func (v *StayConstraintValidator) ValidateDates(period StayPeriod, today time.Time) error {
	today = CalendarDate(today)
	if period.CheckIn().Before(today) {
		return newValidationError(KindPastDate, "%s is before %s", period.CheckIn().Format(DateLayout), today.Format(DateLayout))
	}
	if !period.IsValid() {
		return newValidationError(KindInvalidDateRange, "%s", period.String())
	}
	if period.Days() < 1 {
		return newValidationError(KindInvalidDateRange, "stay must be at least one day")
	}
	return nil
}
