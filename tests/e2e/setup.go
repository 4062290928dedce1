//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"secured-access-demo/cmd/bootstrap"
	"secured-access-demo/cmd/bootstrap/components"
	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/tests/common/upstream"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// E2E app wiring: the real fx graph, config swapped for the fake upstream
// ------------------------------------------------------------
func BuildE2EApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, cfg.Validate(), "e2e config must be valid")

	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func() config.UpstreamConfig { return cfg.Upstream },
			func() config.LoginConfig { return cfg.Login },
			func() config.LogConfig { return cfg.Log },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.HTTPClientModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	require.NotNil(t, router, "router was not populated")
	return router
}

// ConfigFor points the test config at the fake upstream.
func ConfigFor(fake *upstream.Server) config.Config {
	cfg := config.NewTestConfig()
	cfg.Upstream.LoginURL = fake.LoginURL()
	cfg.Upstream.AuthorizedResourceURL = fake.AdministratorURL()
	cfg.Upstream.ForbiddenResourceURL = fake.UserURL()
	return cfg
}

// ------------------------------------------------------------
// Shared suite: one fake upstream and one app per suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Upstream *upstream.Server
	Router   *gin.Engine
	Config   config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Upstream = upstream.NewServer(s.T())
	s.Config = ConfigFor(s.Upstream)
	s.Router = BuildE2EApp(s.T(), s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	s.Upstream.Reset()
}

func (s *SharedSuite) SetupTest() {
	s.Upstream.Reset()
}

// Paths lists the recorded upstream paths in arrival order.
func (s *SharedSuite) Paths() []string {
	reqs := s.Upstream.Requests()
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = fmt.Sprintf("%s %s", r.Method, r.Path)
	}
	return out
}
