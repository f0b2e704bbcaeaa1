package bootstrap

import (
	"stay-booking/internal/infra/metrics"
	"stay-booking/internal/usecase/notify"
	"stay-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) shared.BookingMetrics { return m },
		func(m *metrics.Metrics) notify.FailureRecorder { return m },
	),
)
