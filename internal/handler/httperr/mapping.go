package httperr

import (
	"log/slog"
	"net/http"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type validationDetail struct {
	Kind string `json:"kind"`
}

type conflictDetail struct {
	ConflictingReservationIDs []string `json:"conflictingReservationIds"`
}

type transitionDetail struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type windowDetail struct {
	DaysUntilCheckIn int `json:"daysUntilCheckIn"`
	MinimumDays      int `json:"minimumDays"`
}

// Classify maps an engine or usecase error to its HTTP status, public message
// and optional detail payload.
func Classify(err error) (int, string, any) {
	var (
		validationErr *reservation.ValidationError
		conflictErr   *reservation.DateConflictError
		transitionErr *reservation.InvalidTransitionError
		windowErr     *reservation.CancellationWindowError
	)

	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound, notFoundMessage(err), nil
	case errs.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error(), validationDetail{Kind: string(validationErr.Kind)}
	case errs.Is(err, reservation.ErrValidation),
		errs.Is(err, reservation.ErrInvalidDate),
		errs.Is(err, reservation.ErrInvalidStatus),
		errs.Is(err, reservation.ErrEmptyPaymentMethod),
		errs.Is(err, errs.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid request", nil
	case errs.Is(err, reservation.ErrPropertyUnavailable):
		return http.StatusUnprocessableEntity, "Property is not available for booking", nil
	case errs.As(err, &conflictErr):
		ids := make([]string, len(conflictErr.ConflictingIDs))
		for i, id := range conflictErr.ConflictingIDs {
			ids[i] = id.String()
		}
		return http.StatusConflict, "Dates conflict with an existing reservation", conflictDetail{ConflictingReservationIDs: ids}
	case errs.As(err, &transitionErr):
		return http.StatusConflict, "Invalid status transition",
			transitionDetail{From: transitionErr.From.String(), To: transitionErr.To.String()}
	case errs.As(err, &windowErr):
		return http.StatusUnprocessableEntity, "Cancellation window has closed",
			windowDetail{DaysUntilCheckIn: windowErr.DaysUntilCheckIn, MinimumDays: windowErr.MinimumDays}
	case errs.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, "Reservation was modified concurrently, please retry", nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, "Forbidden", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}

func notFoundMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrReservationNotFound):
		return "Reservation not found"
	case errs.Is(err, errs.ErrPropertyNotFound):
		return "Property not found"
	default:
		return "Not found"
	}
}

// AbortWithDomainError classifies err and aborts the request with it.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}
	AbortWithError(c, status, err, msg, detail)
}
