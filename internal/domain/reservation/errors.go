package reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidDate        = errors.New("invalid calendar date")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrEmptyPaymentMethod = errors.New("payment method is required")
)

// Sentinels for errors.Is checks against the booking error taxonomy.
var (
	ErrValidation          = errors.New("stay validation failed")
	ErrPastDate            = errors.New("check-in date is in the past")
	ErrInvalidDateRange    = errors.New("check-out date must be after check-in date")
	ErrStayTooShort        = errors.New("stay is shorter than the property minimum")
	ErrStayTooLong         = errors.New("stay is longer than the property maximum")
	ErrOccupancyExceeded   = errors.New("guest count exceeds property capacity")
	ErrPropertyUnavailable = errors.New("property is not available for booking")
	ErrDateConflict        = errors.New("dates conflict with an existing reservation")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrCancellationWindow  = errors.New("cancellation window has closed")
)

type ValidationKind string

const (
	KindPastDate          ValidationKind = "PAST_DATE"
	KindInvalidDateRange  ValidationKind = "INVALID_DATE_RANGE"
	KindStayTooShort      ValidationKind = "STAY_TOO_SHORT"
	KindStayTooLong       ValidationKind = "STAY_TOO_LONG"
	KindOccupancyExceeded ValidationKind = "OCCUPANCY_EXCEEDED"
)

var validationSentinels = map[ValidationKind]error{
	KindPastDate:          ErrPastDate,
	KindInvalidDateRange:  ErrInvalidDateRange,
	KindStayTooShort:      ErrStayTooShort,
	KindStayTooLong:       ErrStayTooLong,
	KindOccupancyExceeded: ErrOccupancyExceeded,
}

// ValidationError reports the first stay constraint that a request violated.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func newValidationError(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	base := validationSentinels[e.Kind]
	if base == nil {
		return ErrValidation.Error()
	}
	if e.Detail == "" {
		return base.Error()
	}
	return base.Error() + ": " + e.Detail
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == validationSentinels[e.Kind]
}

type DateConflictError struct {
	ConflictingIDs []uuid.UUID
}

func (e *DateConflictError) Error() string {
	ids := make([]string, len(e.ConflictingIDs))
	for i, id := range e.ConflictingIDs {
		ids[i] = id.String()
	}
	return ErrDateConflict.Error() + " [" + strings.Join(ids, ",") + "]"
}

func (e *DateConflictError) Is(target error) bool {
	return target == ErrDateConflict
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type CancellationWindowError struct {
	DaysUntilCheckIn int
	MinimumDays      int
}

func (e *CancellationWindowError) Error() string {
	return fmt.Sprintf("%s: %d day(s) before check-in, at least %d required",
		ErrCancellationWindow.Error(), e.DaysUntilCheckIn, e.MinimumDays)
}

func (e *CancellationWindowError) Is(target error) bool {
	return target == ErrCancellationWindow
}
