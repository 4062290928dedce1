package bootstrap

import (
	"context"
	"net/http"

	"secured-access-demo/internal/infra/gateway"
	"secured-access-demo/internal/pkg/config"

	"go.uber.org/fx"
)

var HTTPClientModule = fx.Module("httpclient",
	fx.Provide(
		fx.Annotate(
			NewHTTPClient,
			fx.As(new(gateway.HTTPDoer)),
		),
	),
)

func NewHTTPClient(lc fx.Lifecycle, cfg config.UpstreamConfig) *http.Client {
	client := gateway.NewHTTPClient(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			client.CloseIdleConnections()
			return nil
		},
	})

	return client
}
