package access

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidAudience = errors.New("audience must not be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyPassword   = errors.New("password must not be empty")
	ErrEmptyToken      = errors.New("access token must not be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Credentials is the login payload sent to the login service.
// The password is passed through untouched; strength rules belong to the login service.
type Credentials struct {
	audience string
	email    Email
	password string
}

func NewCredentials(audience, emailStr, password string) (Credentials, error) {
	audience = strings.TrimSpace(audience)
	if audience == "" {
		return Credentials{}, ErrInvalidAudience
	}

	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}

	return Credentials{
		audience: audience,
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Audience() string { return c.audience }
func (c Credentials) Email() Email      { return c.email }
func (c Credentials) Password() string  { return c.password }

// AccessToken is the opaque bearer credential returned by the login service.
type AccessToken struct {
	value string
}

func NewAccessToken(s string) (AccessToken, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AccessToken{}, ErrEmptyToken
	}
	return AccessToken{value: s}, nil
}

func (t AccessToken) Value() string {
	return t.value
}

func (t AccessToken) IsZero() bool {
	return t.value == ""
}

// BearerHeader renders the Authorization header value.
func (t AccessToken) BearerHeader() string {
	return "Bearer " + t.value
}

// String never reveals the token so it is safe to pass to loggers.
func (t AccessToken) String() string {
	if t.IsZero() {
		return ""
	}
	return "[redacted]"
}
