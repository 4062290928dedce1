package gateway

import (
	"context"
	"io"
	"net/http"

	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/infra"
)

type ResourceGateway struct {
	client HTTPDoer
}

func NewResourceGateway(client HTTPDoer) *ResourceGateway {
	return &ResourceGateway{client: client}
}

// Fetch returns the status and raw body of url whatever the status is.
func (g *ResourceGateway) Fetch(ctx context.Context, url string, token access.AccessToken) (access.ResourceResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return access.ResourceResult{}, infra.WrapGatewayErr(infra.KindTransport, "failed to build resource request", err)
	}
	setCommonHeaders(req)
	req.Header.Set("Authorization", token.BearerHeader())

	resp, err := g.client.Do(req)
	if err != nil {
		return access.ResourceResult{}, infra.WrapGatewayErr(infra.KindTransport, "resource request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return access.ResourceResult{}, infra.WrapGatewayErr(infra.KindTransport, "failed to read resource response", err)
	}

	return access.ResourceResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
