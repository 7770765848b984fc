package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Item         *api.ItemHandler
	Availability *api.AvailabilityHandler
	Quote        *api.QuoteHandler
	Booking      *api.BookingHandler
	Intent       *api.IntentHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewAvailabilityHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewIntentHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Auth:         p.Auth,
				Item:         p.Item,
				Availability: p.Availability,
				Quote:        p.Quote,
				Booking:      p.Booking,
				Intent:       p.Intent,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
