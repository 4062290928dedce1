package bootstrap

import (
	"log/slog"

	"secured-access-demo/internal/handler/middleware"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
