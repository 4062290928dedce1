package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"secured-access-demo/internal/domain/access"
	"secured-access-demo/internal/infra"
	"secured-access-demo/internal/pkg/config"
)

// maxErrorSnippet bounds how much of a failed login body ends up in the error message.
const maxErrorSnippet = 512

type LoginGateway struct {
	client   HTTPDoer
	loginURL string
}

func NewLoginGateway(client HTTPDoer, cfg config.UpstreamConfig) *LoginGateway {
	return &LoginGateway{
		client:   client,
		loginURL: cfg.LoginURL,
	}
}

func (g *LoginGateway) Login(ctx context.Context, credentials access.Credentials) (access.AccessToken, error) {
	payload, err := json.Marshal(loginRequest{
		Audience:     credentials.Audience(),
		UserEmail:    credentials.Email().Value(),
		UserPassword: credentials.Password(),
	})
	if err != nil {
		return access.AccessToken{}, infra.WrapGatewayErr(infra.KindBadPayload, "failed to encode login request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.loginURL, bytes.NewReader(payload))
	if err != nil {
		return access.AccessToken{}, infra.WrapGatewayErr(infra.KindTransport, "failed to build login request", err)
	}
	setCommonHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return access.AccessToken{}, infra.WrapGatewayErr(infra.KindTransport, "login request failed", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorSnippet))
		return access.AccessToken{}, infra.NewBadStatusErr(
			fmt.Sprintf("login service responded %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)),
			resp.StatusCode,
		)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return access.AccessToken{}, infra.WrapGatewayErr(infra.KindBadPayload, "could not decode login response", err)
	}

	token, err := access.NewAccessToken(tr.AccessToken)
	if err != nil {
		return access.AccessToken{}, infra.WrapGatewayErr(infra.KindBadPayload, "login response has no access token", err)
	}
	return token, nil
}
