package components

import (
	"secured-access-demo/internal/infra/gateway"
	"secured-access-demo/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewLoginGateway,
			fx.As(new(usecase.LoginGateway)),
		),
		fx.Annotate(
			gateway.NewResourceGateway,
			fx.As(new(usecase.ResourceGateway)),
		),
	),
)
