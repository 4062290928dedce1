package components

import (
	"secured-access-demo/internal/handler"
	"secured-access-demo/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSecuredAccessHandler,
	),
	fx.Invoke(handler.NewRouter),
)
