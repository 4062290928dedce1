package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values shared by the local demo setup (upstream URLs, demo credentials, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Login    LoginConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	DemoRateLimit string `envconfig:"DEMO_RATE_LIMIT" default:"30/min"`
}

type UpstreamConfig struct {
	LoginURL              string        `envconfig:"LOGIN_URL" default:"http://localhost:6000/api/Login"`
	AuthorizedResourceURL string        `envconfig:"AUTHORIZED_RESOURCE_URL" default:"http://localhost:7000/api/secured/administrador"`
	ForbiddenResourceURL  string        `envconfig:"FORBIDDEN_RESOURCE_URL" default:"http://localhost:7000/api/secured/usuario"`
	Timeout               time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"0s"` // 0 = no client timeout
}

type LoginConfig struct {
	Audience     string `envconfig:"LOGIN_AUDIENCE" default:"audience1"`
	UserEmail    string `envconfig:"LOGIN_USER_EMAIL" default:"admin@serpro.gov.br"`
	UserPassword string `envconfig:"LOGIN_USER_PASSWORD" default:"Sw0rdfi$h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// RateLimit is a parsed "<requests>/<interval>" value.
type RateLimit struct {
	Requests int
	Interval time.Duration
}

// Enabled reports whether the limit should be enforced at all.
func (r RateLimit) Enabled() bool {
	return r.Requests > 0 && r.Interval > 0
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	urls := []struct {
		key string
		raw string
	}{
		{"LOGIN_URL", c.Upstream.LoginURL},
		{"AUTHORIZED_RESOURCE_URL", c.Upstream.AuthorizedResourceURL},
		{"FORBIDDEN_RESOURCE_URL", c.Upstream.ForbiddenResourceURL},
	}
	for _, u := range urls {
		if err := validateUpstreamURL(u.raw); err != nil {
			return fmt.Errorf("invalid %s: %w", u.key, err)
		}
	}

	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("invalid UPSTREAM_TIMEOUT: must not be negative")
	}

	if strings.TrimSpace(c.Login.Audience) == "" ||
		strings.TrimSpace(c.Login.UserEmail) == "" ||
		c.Login.UserPassword == "" {
		return fmt.Errorf("LOGIN_AUDIENCE, LOGIN_USER_EMAIL and LOGIN_USER_PASSWORD must not be empty")
	}

	if _, err := ParseRateLimit(c.Server.DemoRateLimit); err != nil {
		return fmt.Errorf("invalid DEMO_RATE_LIMIT: %w", err)
	}

	if err := validateAllowOrigins(c.CORS.AllowOrigins); err != nil {
		return fmt.Errorf("invalid CORS_ALLOW_ORIGINS: %w", err)
	}
	return nil
}

// validateAllowOrigins applies the same rules gin-contrib/cors enforces with a panic at startup.
func validateAllowOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("at least one origin is required")
	}
	for _, origin := range origins {
		if strings.Contains(origin, "*") {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("origin %q must contain '*' or start with http:// or https://", origin)
		}
	}
	return nil
}

func validateUpstreamURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is empty")
	}
	return nil
}

// ParseRateLimit parses values such as "30/min" or "5/s". A zero request count disables the limit.
func ParseRateLimit(value string) (RateLimit, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimit{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests < 0 {
		return RateLimit{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	var interval time.Duration
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimit{}, fmt.Errorf("unsupported interval unit: %s", parts[1])
	}

	return RateLimit{Requests: requests, Interval: interval}, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			DemoRateLimit: "0/min",
		},
		Upstream: UpstreamConfig{
			LoginURL:              "http://localhost:6000/api/Login",
			AuthorizedResourceURL: "http://localhost:7000/api/secured/administrador",
			ForbiddenResourceURL:  "http://localhost:7000/api/secured/usuario",
		},
		Login: LoginConfig{
			Audience:     "audience1",
			UserEmail:    "admin@serpro.gov.br",
			UserPassword: "Sw0rdfi$h",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
