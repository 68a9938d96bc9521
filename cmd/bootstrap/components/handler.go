package components

import (
	"parkhub/internal/handler"
	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewGateHandler,
		api.NewSectorHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
