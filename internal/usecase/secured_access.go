package usecase

import (
	"context"
	"log/slog"

	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/pkg/clock"
	"secured-access-demo/internal/pkg/errs"
	"secured-access-demo/internal/pkg/reqctx"
)

//go:generate mockgen -source=secured_access.go -destination=../../tests/mock/usecase/mock_secured_access.go -package=usecasemock

var (
	ErrAuthenticationUnavailable = errs.New("authentication unavailable")
	ErrResourceUnreachable       = errs.New("secured resource unreachable")
)

// SecuredAccessTargets are the two secured resources called with the obtained token.
type SecuredAccessTargets struct {
	AuthorizedResourceURL string
	ForbiddenResourceURL  string
}

type SecuredAccessUseCase interface {
	Run(ctx context.Context) (*access.Report, error)
}

type securedAccessUseCaseImpl struct {
	loginGateway    LoginGateway
	resourceGateway ResourceGateway
	credentials     access.Credentials
	targets         SecuredAccessTargets
	clock           clock.Clock
}

func NewSecuredAccessUseCase(
	loginGateway LoginGateway,
	resourceGateway ResourceGateway,
	credentials access.Credentials,
	targets SecuredAccessTargets,
	clk clock.Clock,
) SecuredAccessUseCase {
	return &securedAccessUseCaseImpl{
		loginGateway:    loginGateway,
		resourceGateway: resourceGateway,
		credentials:     credentials,
		targets:         targets,
		clock:           clk,
	}
}

// Run logs in, then calls the authorized and the forbidden resource, strictly in that order.
// Each step needs the previous one to have finished: both resource calls use the login token.
func (u *securedAccessUseCaseImpl) Run(ctx context.Context) (*access.Report, error) {
	token, err := u.login(ctx)
	if err != nil {
		return nil, err
	}

	authorized, err := u.fetch(ctx, "authorized", u.targets.AuthorizedResourceURL, token)
	if err != nil {
		return nil, err
	}

	forbidden, err := u.fetch(ctx, "forbidden", u.targets.ForbiddenResourceURL, token)
	if err != nil {
		return nil, err
	}

	return access.NewReport(authorized, forbidden), nil
}

func (u *securedAccessUseCaseImpl) login(ctx context.Context) (access.AccessToken, error) {
	start := u.clock.Now()
	token, err := u.loginGateway.Login(ctx, u.credentials)
	elapsed := u.clock.Since(start)

	if err != nil {
		slog.Warn("login call failed",
			"request_id", reqctx.RequestID(ctx),
			"audience", u.credentials.Audience(),
			"user_email", u.credentials.Email().Value(),
			"duration", elapsed,
			"error", err.Error(),
		)
		return access.AccessToken{}, errs.Mark(errs.Wrap(err, "login"), ErrAuthenticationUnavailable)
	}

	// never call downstream with a blank bearer
	if token.IsZero() {
		slog.Warn("login returned an empty access token",
			"request_id", reqctx.RequestID(ctx),
			"user_email", u.credentials.Email().Value(),
		)
		return access.AccessToken{}, errs.Mark(access.ErrEmptyToken, ErrAuthenticationUnavailable)
	}

	slog.Debug("login succeeded",
		"request_id", reqctx.RequestID(ctx),
		"user_email", u.credentials.Email().Value(),
		"duration", elapsed,
	)
	return token, nil
}

func (u *securedAccessUseCaseImpl) fetch(ctx context.Context, label, url string, token access.AccessToken) (access.ResourceResult, error) {
	start := u.clock.Now()
	result, err := u.resourceGateway.Fetch(ctx, url, token)
	elapsed := u.clock.Since(start)

	if err != nil {
		slog.Error("secured resource call failed",
			"request_id", reqctx.RequestID(ctx),
			"resource", label,
			"url", url,
			"duration", elapsed,
			"error", err.Error(),
		)
		return access.ResourceResult{}, errs.Mark(errs.Wrapf(err, "fetch %s resource", label), ErrResourceUnreachable)
	}

	slog.Info("secured resource called",
		"request_id", reqctx.RequestID(ctx),
		"resource", label,
		"url", url,
		"status_code", result.StatusCode,
		"duration", elapsed,
	)
	return result, nil
}
