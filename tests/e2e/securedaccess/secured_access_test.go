//go:build e2e

package securedaccess_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	resdto "secured-access-demo/internal/handler/dto/response"
	"secured-access-demo/tests/common/httptest"
	"secured-access-demo/tests/common/upstream"
	"secured-access-demo/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const demoURL = "/api/access-secured-demo"

type securedAccessSuite struct {
	e2e.SharedSuite
}

func TestSecuredAccessSuite(t *testing.T) {
	suite.Run(t, new(securedAccessSuite))
}

func (s *securedAccessSuite) TestAccessSecuredDemo() {
	s.Run("admin token: administrador allowed, usuario forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, demoURL, nil, nil)

		httptest.AssertSecuredAccessResponse(s.T(), rec, resdto.SecuredAccessResponse{
			AuthorizedStatusCode: http.StatusOK,
			AuthorizedBody:       upstream.AdministratorMsg,
			ForbiddenStatusCode:  http.StatusForbidden,
			ForbiddenBody:        "",
		})
	})

	s.Run("login happens before both secured calls", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, demoURL, nil, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		s.Equal([]string{
			"POST " + upstream.LoginPath,
			"GET " + upstream.AdministratorPath,
			"GET " + upstream.UserPath,
		}, s.Paths())
	})

	s.Run("both secured calls carry the same bearer token and the request id", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, demoURL, nil,
			map[string]string{"X-Request-ID": "e2e-req-1"})
		s.Require().Equal(http.StatusOK, rec.Code)

		reqs := s.Upstream.Requests()
		s.Require().Len(reqs, 3)
		s.Empty(reqs[0].Authorization)
		s.NotEmpty(reqs[1].Authorization)
		s.Equal(reqs[1].Authorization, reqs[2].Authorization)
		for _, r := range reqs {
			s.Equal("e2e-req-1", r.RequestID)
			s.Equal("application/json", r.Accept)
		}
	})

	s.Run("repeated invocations give identical output", func() {
		first := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, demoURL, nil, nil)
		second := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, demoURL, nil, nil)

		s.Require().Equal(http.StatusOK, first.Code)
		s.Require().Equal(http.StatusOK, second.Code)

		var a, b resdto.SecuredAccessResponse
		httptest.DecodeResponseBody(s.T(), first.Body, &a)
		httptest.DecodeResponseBody(s.T(), second.Body, &b)
		s.Empty(cmp.Diff(a, b))
	})
}

func (s *securedAccessSuite) TestHealth() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
}

func TestFixedTokenIsForwardedVerbatim(t *testing.T) {
	fake := upstream.NewServer(t, upstream.WithFixedToken("abc123"))
	router := e2e.BuildE2EApp(t, e2e.ConfigFor(fake))

	rec := httptest.PerformRequest(t, router, http.MethodGet, demoURL, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	reqs := fake.Requests()
	require.Len(t, reqs, 3)
	require.Equal(t, "Bearer abc123", reqs[1].Authorization)
	require.Equal(t, "Bearer abc123", reqs[2].Authorization)
}

func TestLoginFailureStopsTheDemo(t *testing.T) {
	t.Run("login service unreachable", func(t *testing.T) {
		secured := upstream.NewServer(t)
		dead := nethttptest.NewServer(http.NotFoundHandler())
		dead.Close()

		cfg := e2e.ConfigFor(secured)
		cfg.Upstream.LoginURL = dead.URL + upstream.LoginPath
		router := e2e.BuildE2EApp(t, cfg)

		rec := httptest.PerformRequest(t, router, http.MethodGet, demoURL, nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Authentication unavailable")
		require.Empty(t, secured.Requests(), "secured service must not be called")
	})

	t.Run("login rejects the credentials", func(t *testing.T) {
		fake := upstream.NewServer(t)
		cfg := e2e.ConfigFor(fake)
		cfg.Login.UserPassword = "wrong-password"
		router := e2e.BuildE2EApp(t, cfg)

		rec := httptest.PerformRequest(t, router, http.MethodGet, demoURL, nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Authentication unavailable")

		reqs := fake.Requests()
		require.Len(t, reqs, 1)
		require.Equal(t, upstream.LoginPath, reqs[0].Path)
	})

	t.Run("login answers with garbage", func(t *testing.T) {
		fake := upstream.NewServer(t, upstream.WithLoginFault(func(c *gin.Context) bool {
			c.Data(http.StatusOK, "application/json", []byte(`{"accessToken":`))
			return true
		}))
		router := e2e.BuildE2EApp(t, e2e.ConfigFor(fake))

		rec := httptest.PerformRequest(t, router, http.MethodGet, demoURL, nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Authentication unavailable")
		require.Len(t, fake.Requests(), 1)
	})
}

func TestSecuredServiceDownIsAnInternalError(t *testing.T) {
	login := upstream.NewServer(t)
	dead := nethttptest.NewServer(http.NotFoundHandler())
	dead.Close()

	cfg := e2e.ConfigFor(login)
	cfg.Upstream.AuthorizedResourceURL = dead.URL + upstream.AdministratorPath
	router := e2e.BuildE2EApp(t, cfg)

	rec := httptest.PerformRequest(t, router, http.MethodGet, demoURL, nil, nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
