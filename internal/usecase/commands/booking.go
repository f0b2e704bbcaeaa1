package commands

import (
	"context"
	"log/slog"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/notify"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

const (
	maxMutationAttempts      = 2
	defaultCompleteBatchSize = 500
)

var errSkipCompletion = errs.New("reservation no longer completable")

// Actor is whoever drives a status change. Privileged actors (admins and the
// property owner) bypass the guest cancellation window and may set any status.
// Payments are recorded only by an admin or the reservation's guest.
type Actor struct {
	UserID     uuid.UUID
	Privileged bool
	Admin      bool
}

type CreateReservationInput struct {
	PropertyID      uuid.UUID
	UserID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int
	SpecialRequests string
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status reservation.Status, actor Actor) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID, actor Actor) (*reservation.Reservation, error)
	RecordPayment(ctx context.Context, reservationID uuid.UUID, method, reference string, actor Actor) (*reservation.Reservation, error)
	CompleteElapsed(ctx context.Context) (int, error)
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, ev notify.Event)
}

type BookingSettings struct {
	Cancellation      reservation.CancellationPolicy
	CompleteBatchSize int
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	validator  *reservation.StayConstraintValidator
	pricing    reservation.PriceCalculator
	settings   BookingSettings
	dispatcher EventDispatcher
	metrics    shared.BookingMetrics
	clock      clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	pricing reservation.PriceCalculator,
	settings BookingSettings,
	dispatcher EventDispatcher,
	metrics shared.BookingMetrics,
	clk clock.Clock,
) BookingCommands {
	if settings.CompleteBatchSize <= 0 {
		settings.CompleteBatchSize = defaultCompleteBatchSize
	}
	if metrics == nil {
		metrics = shared.NopMetrics{}
	}
	return &bookingUseCaseImpl{
		uow:        uow,
		validator:  reservation.NewStayConstraintValidator(),
		pricing:    pricing,
		settings:   settings,
		dispatcher: dispatcher,
		metrics:    metrics,
		clock:      clk,
	}
}

func (uc *bookingUseCaseImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	created, err := uc.createReservation(ctx, in)
	uc.metrics.BookingAttempt(bookingOutcome(err))
	if err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(ctx, notify.NewEvent(notify.EventReservationCreated, created, "", created.CreatedAt()))
	return created, nil
}

func (uc *bookingUseCaseImpl) createReservation(ctx context.Context, in CreateReservationInput) (*reservation.Reservation, error) {
	now := uc.clock.Now()
	today := reservation.CalendarDate(now)
	period := reservation.NewStayPeriod(in.CheckIn, in.CheckOut)
	note := reservation.NewNote(in.SpecialRequests)

	prop, err := shared.NewAvailabilityCheckerForTx(uc.uow.Reader()).LoadProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if err = uc.validator.Validate(prop, period, in.GuestCount, today); err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = uc.uow.WithinPropertyLock(ctx, in.PropertyID, func(ctx context.Context, tx shared.Tx) error {
		checker := shared.NewAvailabilityCheckerForTx(tx)

		// Reload under the lock: status and bounds may have changed since the first read.
		locked, lerr := checker.LoadProperty(ctx, in.PropertyID)
		if lerr != nil {
			return lerr
		}
		if !locked.IsAvailable() {
			return errs.Wrap(reservation.ErrPropertyUnavailable, "property status "+locked.Status().String())
		}
		if lerr = uc.validator.Validate(locked, period, in.GuestCount, today); lerr != nil {
			return lerr
		}

		conflicts, lerr := checker.FindOverlapping(ctx, locked.ID(), period)
		if lerr != nil {
			return lerr
		}
		if len(conflicts) > 0 {
			return &reservation.DateConflictError{ConflictingIDs: reservationIDs(conflicts)}
		}

		quote, lerr := uc.pricing.Quote(locked, period)
		if lerr != nil {
			return lerr
		}

		res, lerr := reservation.NewReservation(locked, in.UserID, period, in.GuestCount, note, quote, now)
		if lerr != nil {
			return lerr
		}
		if lerr = tx.Reservations().Create(ctx, res); lerr != nil {
			return lerr
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status reservation.Status, actor Actor) (*reservation.Reservation, error) {
	updated, previous, err := uc.mutate(ctx, reservationID, func(r *reservation.Reservation, now time.Time) error {
		if err := authorizeStatusChange(r, status, actor); err != nil {
			return err
		}
		switch status {
		case reservation.StatusConfirmed:
			return r.Confirm(now)
		case reservation.StatusCancelled:
			if err := uc.settings.Cancellation.Check(r, reservation.CalendarDate(now), actor.Privileged); err != nil {
				return err
			}
			return r.Cancel(reservation.CancellationReasonFor(r, actor.UserID), now)
		case reservation.StatusCompleted:
			return r.Complete(now)
		default:
			return &reservation.InvalidTransitionError{From: r.Status(), To: status}
		}
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.StatusTransition(previous, updated.Status())
	evType := notify.EventStatusChanged
	if updated.Status() == reservation.StatusCancelled {
		evType = notify.EventReservationCancelled
	}
	uc.dispatcher.Dispatch(ctx, notify.NewEvent(evType, updated, previous, updated.UpdatedAt()))
	return updated, nil
}

func (uc *bookingUseCaseImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID, actor Actor) (*reservation.Reservation, error) {
	return uc.UpdateStatus(ctx, reservationID, reservation.StatusCancelled, actor)
}

func (uc *bookingUseCaseImpl) RecordPayment(ctx context.Context, reservationID uuid.UUID, method, reference string, actor Actor) (*reservation.Reservation, error) {
	confirmed := false
	updated, previous, err := uc.mutate(ctx, reservationID, func(r *reservation.Reservation, now time.Time) error {
		if !actor.Admin && !r.BelongsTo(actor.UserID) {
			return errs.ErrForbidden
		}
		var perr error
		confirmed, perr = r.RecordPayment(method, reference, now)
		return perr
	})
	if err != nil {
		return nil, err
	}

	if confirmed {
		uc.metrics.StatusTransition(previous, updated.Status())
	}
	uc.dispatcher.Dispatch(ctx, notify.NewEvent(notify.EventPaymentRecorded, updated, previous, updated.UpdatedAt()))
	return updated, nil
}

// CompleteElapsed moves CONFIRMED reservations whose check-out date has passed
// to COMPLETED. Individual failures are logged and skipped.
func (uc *bookingUseCaseImpl) CompleteElapsed(ctx context.Context) (int, error) {
	today := reservation.CalendarDate(uc.clock.Now())

	candidates, err := uc.uow.Reader().Reservations().ListCompletable(ctx, today, uc.settings.CompleteBatchSize)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return completed, ctx.Err()
		}
		updated, previous, merr := uc.mutate(ctx, candidate.ID(), func(r *reservation.Reservation, now time.Time) error {
			if r.Status() != reservation.StatusConfirmed || !r.CheckOut().Before(today) {
				return errSkipCompletion
			}
			return r.Complete(now)
		})
		if merr != nil {
			if !errs.Is(merr, errSkipCompletion) {
				slog.WarnContext(ctx, "failed to complete reservation",
					"reservation_id", candidate.ID().String(),
					"error", merr.Error())
			}
			continue
		}

		completed++
		uc.metrics.StatusTransition(previous, updated.Status())
		uc.dispatcher.Dispatch(ctx, notify.NewEvent(notify.EventStatusChanged, updated, previous, updated.UpdatedAt()))
	}

	return completed, nil
}

// mutate loads a reservation, applies change and saves it against the loaded
// version. A stale version is retried once with a fresh load.
func (uc *bookingUseCaseImpl) mutate(
	ctx context.Context,
	reservationID uuid.UUID,
	change func(r *reservation.Reservation, now time.Time) error,
) (*reservation.Reservation, reservation.Status, error) {
	var lastErr error
	for attempt := 1; attempt <= maxMutationAttempts; attempt++ {
		var (
			updated  *reservation.Reservation
			previous reservation.Status
		)
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			res, gerr := tx.Reservations().GetByID(ctx, reservationID)
			if gerr != nil {
				return shared.MarkNotFound(gerr, errs.ErrReservationNotFound)
			}

			previous = res.Status()
			expected := res.Version()
			if gerr = change(res, uc.clock.Now()); gerr != nil {
				return gerr
			}
			if gerr = tx.Reservations().Update(ctx, res, expected); gerr != nil {
				return gerr
			}
			updated = res
			return nil
		})
		if err == nil {
			return updated, previous, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, "", err
		}

		lastErr = err
		slog.DebugContext(ctx, "stale reservation version",
			"reservation_id", reservationID.String(),
			"attempt", attempt)
	}
	return nil, "", errs.Mark(lastErr, errs.ErrConcurrentModification)
}

// Guests may only cancel their own reservation through a status change.
func authorizeStatusChange(r *reservation.Reservation, status reservation.Status, actor Actor) error {
	if actor.Privileged {
		return nil
	}
	if !r.BelongsTo(actor.UserID) || status != reservation.StatusCancelled {
		return errs.ErrForbidden
	}
	return nil
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return shared.OutcomeCreated
	case errs.Is(err, reservation.ErrValidation):
		return shared.OutcomeValidationFailed
	case errs.Is(err, reservation.ErrPropertyUnavailable):
		return shared.OutcomeUnavailable
	case errs.Is(err, reservation.ErrDateConflict):
		return shared.OutcomeConflict
	case errs.IsNotFound(err):
		return shared.OutcomePropertyNotFound
	default:
		return shared.OutcomeError
	}
}

func reservationIDs(rs []*reservation.Reservation) []uuid.UUID {
	ids := make([]uuid.UUID, len(rs))
	for i, r := range rs {
		ids[i] = r.ID()
	}
	return ids
}
