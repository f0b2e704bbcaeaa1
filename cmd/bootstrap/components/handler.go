package components

import (
	"stay-booking/internal/handler"
	"stay-booking/internal/handler/api"
	"stay-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPropertyHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, p *api.PropertyHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Property: p}
		},
	),
	fx.Invoke(handler.NewRouter),
)
