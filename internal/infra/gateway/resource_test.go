//go:build unit

package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/infra"
	"secured-access-demo/internal/infra/gateway"
	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/internal/pkg/errs"
	"secured-access-demo/internal/pkg/reqctx"
	"secured-access-demo/tests/common/builder"
	"secured-access-demo/tests/common/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceGateway() *gateway.ResourceGateway {
	return gateway.NewResourceGateway(gateway.NewHTTPClient(config.UpstreamConfig{}))
}

func TestResourceGateway_Fetch(t *testing.T) {
	t.Run("success: sends the bearer token and captures status and body", func(t *testing.T) {
		fake := upstream.NewServer(t, upstream.WithFixedToken("abc123"))
		token := builder.MustToken(t, "abc123")
		ctx := reqctx.WithRequestID(context.Background(), "req-7")

		result, err := newResourceGateway().Fetch(ctx, fake.AdministratorURL(), token)
		require.NoError(t, err)
		assert.Equal(t, access.ResourceResult{StatusCode: http.StatusOK, Body: upstream.AdministratorMsg}, result)

		reqs := fake.Requests()
		require.Len(t, reqs, 1)
		assert.Equal(t, http.MethodGet, reqs[0].Method)
		assert.Equal(t, "Bearer abc123", reqs[0].Authorization)
		assert.Equal(t, "application/json", reqs[0].Accept)
		assert.Equal(t, "req-7", reqs[0].RequestID)
	})

	t.Run("success: non-2xx statuses are results, not errors", func(t *testing.T) {
		testCases := []struct {
			name   string
			status int
			body   string
		}{
			{name: "forbidden with body", status: http.StatusForbidden, body: "forbidden-body"},
			{name: "forbidden without body", status: http.StatusForbidden, body: ""},
			{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"invalid token"}`},
			{name: "server error", status: http.StatusInternalServerError, body: "boom"},
			{name: "ok", status: http.StatusOK, body: "ok-body"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tc.status)
					_, _ = io.WriteString(w, tc.body)
				}))
				defer srv.Close()

				result, err := newResourceGateway().Fetch(context.Background(), srv.URL, builder.MustToken(t, "abc123"))
				require.NoError(t, err)
				assert.Equal(t, tc.status, result.StatusCode)
				assert.Equal(t, tc.body, result.Body)
			})
		}
	})

	t.Run("success: administrator token is rejected by the user endpoint", func(t *testing.T) {
		fake := upstream.NewServer(t, upstream.WithFixedToken("abc123"))

		result, err := newResourceGateway().Fetch(context.Background(), fake.UserURL(), builder.MustToken(t, "abc123"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, result.StatusCode)
		assert.Empty(t, result.Body)
	})

	t.Run("error: unreachable secured service", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := newResourceGateway().Fetch(context.Background(), srv.URL, builder.MustToken(t, "abc123"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindTransport))
		assert.True(t, errs.Is(err, errs.ErrUpstreamRequestFailed))
	})

	t.Run("error: invalid URL", func(t *testing.T) {
		_, err := newResourceGateway().Fetch(context.Background(), "://bad", builder.MustToken(t, "abc123"))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindTransport))
	})
}
