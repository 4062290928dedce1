package gateway

import (
	"net/http"

	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/internal/pkg/reqctx"
)

// HTTPDoer is the subset of *http.Client the gateways need.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient builds the outbound client. Keep-alives are off, so every call dials a
// fresh connection and nothing is pooled between the login and the resource calls.
func NewHTTPClient(cfg config.UpstreamConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
	}
}

func setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if id := reqctx.RequestID(req.Context()); id != "" {
		req.Header.Set(reqctx.HeaderRequestID, id)
	}
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
