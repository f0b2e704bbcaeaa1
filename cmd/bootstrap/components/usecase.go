package components

import (
	"context"
	"log/slog"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/notify"
	"stay-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		NewPricingCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	NewBookingSettings,
	fx.Annotate(
		NewDispatcher,
		fx.As(new(commands.EventDispatcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewPropertyQueries,
		queries.NewAccessPolicy,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClock reports time in the booking time zone so that "today" matches the
// properties' calendar.
func NewClock(cfg config.Config) clock.Clock {
	return clock.InLocation(clock.NewRealClock(), cfg.Booking.Location())
}

func NewPricingCalculator(cfg config.Config) *reservation.PricingCalculator {
	b := cfg.Booking
	return reservation.NewPricingCalculator(reservation.FeeSchedule{
		BaseCleaningFee:       reservation.NewMoney(b.BaseCleaningCents),
		BedroomSurchargeBP:    b.BedroomSurchargeBP,
		LongStayMultiplierBP:  b.LongStayMultiplierBP,
		LongStayThresholdDays: b.LongStayThresholdDays,
		ServiceFeeBP:          b.ServiceFeeBP,
		TaxBP:                 b.TaxBP,
	})
}

func NewBookingSettings(cfg config.Config) commands.BookingSettings {
	return commands.BookingSettings{
		Cancellation:      reservation.NewCancellationPolicy(cfg.Booking.CancelWindowDays),
		CompleteBatchSize: cfg.Booking.CompleteBatchSize,
	}
}

func NewDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	notifier notify.Notifier,
	logger *slog.Logger,
	failures notify.FailureRecorder,
) *notify.Dispatcher {
	d := notify.NewDispatcher(notifier, cfg.Notify.Timeout, logger, failures)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Close(ctx)
		},
	})
	return d
}
