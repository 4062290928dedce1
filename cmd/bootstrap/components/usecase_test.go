//go:build unit

package components_test

import (
	"testing"

	"secured-access-demo/cmd/bootstrap/components"
	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/internal/pkg/errs"
	"secured-access-demo/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Run("builds credentials from the login config", func(t *testing.T) {
		creds, err := components.NewCredentials(builder.NewCredentialsBuilder().BuildConfig())
		require.NoError(t, err)
		assert.Equal(t, "audience1", creds.Audience())
		assert.Equal(t, "admin@serpro.gov.br", creds.Email().Value())
	})

	t.Run("invalid config is a domain validation error", func(t *testing.T) {
		cfg := builder.NewCredentialsBuilder().
			With(func(b *builder.CredentialsBuilder) { b.UserEmail = "not-an-email" }).
			BuildConfig()

		_, err := components.NewCredentials(cfg)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, access.ErrInvalidEmail))
	})
}

func TestNewSecuredAccessTargets(t *testing.T) {
	cfg := config.NewTestConfig().Upstream
	targets := components.NewSecuredAccessTargets(cfg)

	assert.Equal(t, cfg.AuthorizedResourceURL, targets.AuthorizedResourceURL)
	assert.Equal(t, cfg.ForbiddenResourceURL, targets.ForbiddenResourceURL)
}
