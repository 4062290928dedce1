package components

import (
	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/pkg/clock"
	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/internal/pkg/errs"
	"secured-access-demo/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewSecuredAccessUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCredentials,
	NewSecuredAccessTargets,
)

func NewCredentials(cfg config.LoginConfig) (access.Credentials, error) {
	creds, err := access.NewCredentials(cfg.Audience, cfg.UserEmail, cfg.UserPassword)
	if err != nil {
		return access.Credentials{}, errs.Mark(errs.Wrap(err, "invalid login credentials"), errs.ErrDomainValidation)
	}
	return creds, nil
}

func NewSecuredAccessTargets(cfg config.UpstreamConfig) usecase.SecuredAccessTargets {
	return usecase.SecuredAccessTargets{
		AuthorizedResourceURL: cfg.AuthorizedResourceURL,
		ForbiddenResourceURL:  cfg.ForbiddenResourceURL,
	}
}
