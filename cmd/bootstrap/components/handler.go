package components

import (
	"loyalty-wallet/internal/handler"
	"loyalty-wallet/internal/handler/api"
	"loyalty-wallet/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPassHandler,
		api.NewPassKitHandler,
		api.NewScannerHandler,
		middleware.NewAuthMiddleware,
		middleware.NewPassKitAuth,
	),
	fx.Invoke(handler.NewRouter),
)
