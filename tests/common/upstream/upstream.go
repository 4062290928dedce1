//go:build unit || e2e

package upstream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath         = "/api/Login"
	AdministratorPath = "/api/secured/administrador"
	UserPath          = "/api/secured/usuario"

	RoleAdministrator = "administrador"
	RoleUser          = "usuario"

	Audience         = "audience1"
	AdminEmail       = "admin@serpro.gov.br"
	AdminPassword    = "Sw0rdfi$h"
	AdministratorMsg = "Acesso permitido ao administrador"
	UserMsg          = "Acesso permitido ao usuario"
)

// RecordedRequest is one request observed by the fake, in arrival order.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Accept        string
	RequestID     string
	Body          map[string]any
}

type account struct {
	password string
	role     string
}

// Server is an in-process stand-in for both the login service and the secured service.
type Server struct {
	*httptest.Server

	issuer   *TokenIssuer
	accounts map[string]account

	mu         sync.Mutex
	requests   []RecordedRequest
	fixedToken string
	loginFault func(c *gin.Context) bool
}

type Option func(*Server)

// WithFixedToken makes the login service hand out token verbatim and accept it as an administrator credential.
func WithFixedToken(token string) Option {
	return func(s *Server) { s.fixedToken = token }
}

// WithLoginFault lets a test take over the login endpoint; returning true means the response was written.
func WithLoginFault(fault func(c *gin.Context) bool) Option {
	return func(s *Server) { s.loginFault = fault }
}

func NewServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		issuer: NewTokenIssuer("upstream-test-secret", "fake-login-service", time.Hour),
		accounts: map[string]account{
			AdminEmail: {password: AdminPassword, role: RoleAdministrator},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	engine := gin.New()
	engine.Use(s.record)
	engine.POST(LoginPath, s.login)
	engine.GET(AdministratorPath, s.requireRole(RoleAdministrator, AdministratorMsg))
	engine.GET(UserPath, s.requireRole(RoleUser, UserMsg))

	s.Server = httptest.NewServer(engine)
	t.Cleanup(s.Close)
	return s
}

func (s *Server) LoginURL() string         { return s.URL + LoginPath }
func (s *Server) AdministratorURL() string { return s.URL + AdministratorPath }
func (s *Server) UserURL() string          { return s.URL + UserPath }

// Requests returns a copy of everything observed so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) record(c *gin.Context) {
	rec := RecordedRequest{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Authorization: c.GetHeader("Authorization"),
		Accept:        c.GetHeader("Accept"),
		RequestID:     c.GetHeader("X-Request-ID"),
	}
	if c.Request.Method == http.MethodPost {
		var body map[string]any
		if err := c.ShouldBindBodyWithJSON(&body); err == nil {
			rec.Body = body
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	s.mu.Unlock()

	c.Next()
}

type loginRequest struct {
	Audience     string `json:"audience" binding:"required"`
	UserEmail    string `json:"userEmail" binding:"required"`
	UserPassword string `json:"userPassword" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	if s.loginFault != nil && s.loginFault(c) {
		return
	}

	var req loginRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"authenticated": false, "message": "invalid request"})
		return
	}

	acc, ok := s.accounts[req.UserEmail]
	if !ok || acc.password != req.UserPassword || req.Audience != Audience {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "message": "Falha ao autenticar"})
		return
	}

	if s.fixedToken != "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": true, "accessToken": s.fixedToken})
		return
	}

	token, expiresAt, err := s.issuer.Issue(req.UserEmail, req.Audience, acc.role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"accessToken":   token,
		"expiration":    expiresAt.UTC().Format(time.RFC3339),
		"message":       "OK",
	})
}

func (s *Server) requireRole(role, okMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Status(http.StatusUnauthorized)
			return
		}
		token := strings.TrimSpace(authHeader[len("Bearer "):])

		var actualRole string
		if s.fixedToken != "" {
			if token != s.fixedToken {
				c.Status(http.StatusUnauthorized)
				return
			}
			actualRole = RoleAdministrator
		} else {
			claims, err := s.issuer.Validate(token, Audience)
			if err != nil {
				c.Status(http.StatusUnauthorized)
				return
			}
			actualRole = claims.Role
		}

		if actualRole != role {
			c.Status(http.StatusForbidden)
			return
		}
		c.String(http.StatusOK, okMessage)
	}
}
