//go:build unit || e2e

package builder

import (
	"testing"

	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

type CredentialsBuilder struct {
	Audience     string
	UserEmail    string
	UserPassword string
}

func NewCredentialsBuilder() *CredentialsBuilder {
	return &CredentialsBuilder{
		Audience:     "audience1",
		UserEmail:    "admin@serpro.gov.br",
		UserPassword: "Sw0rdfi$h",
	}
}

func (b *CredentialsBuilder) With(mutate func(*CredentialsBuilder)) *CredentialsBuilder {
	mutate(b)
	return b
}

func (b *CredentialsBuilder) Build() (access.Credentials, error) {
	return access.NewCredentials(b.Audience, b.UserEmail, b.UserPassword)
}

func (b *CredentialsBuilder) MustBuild(t *testing.T) access.Credentials {
	t.Helper()
	creds, err := b.Build()
	require.NoError(t, err)
	return creds
}

func (b *CredentialsBuilder) BuildConfig() config.LoginConfig {
	return config.LoginConfig{
		Audience:     b.Audience,
		UserEmail:    b.UserEmail,
		UserPassword: b.UserPassword,
	}
}

func MustToken(t *testing.T, value string) access.AccessToken {
	t.Helper()
	token, err := access.NewAccessToken(value)
	require.NoError(t, err)
	return token
}
