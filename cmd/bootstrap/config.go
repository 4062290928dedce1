package bootstrap

import (
	"secured-access-demo/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.UpstreamConfig { return cfg.Upstream },
		func(cfg config.Config) config.LoginConfig { return cfg.Login },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)
