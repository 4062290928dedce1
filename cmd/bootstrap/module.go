package bootstrap

import (
	"secured-access-demo/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	HTTPClientModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
