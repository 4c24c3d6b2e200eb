package components

import (
	"salon-loyalty/internal/handler"
	"salon-loyalty/internal/handler/api"
	"salon-loyalty/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSalonHandler,
		api.NewCheckinHandler,
		api.NewCustomerHandler,
		api.NewRealtimeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
