package components

import (
	"petstay-backend/internal/handler"
	"petstay-backend/internal/handler/api"
	"petstay-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewRoomBookingHandler,
		api.NewSitterBookingHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, r *api.RoomBookingHandler, s *api.SitterBookingHandler) handler.Handlers {
			return handler.Handlers{Availability: a, RoomBookings: r, SitterBookings: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)
