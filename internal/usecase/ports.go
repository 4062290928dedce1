package usecase

import (
	"context"

	"secured-access-demo/internal/domain/access"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// LoginGateway exchanges credentials for an access token at the login service.
type LoginGateway interface {
	Login(ctx context.Context, credentials access.Credentials) (access.AccessToken, error)
}

// ResourceGateway calls a secured resource with a bearer token and reports whatever came back.
// A non-2xx status is returned as a result, not an error.
type ResourceGateway interface {
	Fetch(ctx context.Context, url string, token access.AccessToken) (access.ResourceResult, error)
}
