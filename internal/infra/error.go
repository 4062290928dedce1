package infra

import (
	"errors"
	"log/slog"

	"secured-access-demo/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError describes why a call to an upstream service could not produce a usable answer.
type GatewayError struct {
	Kind       GatewayErrorKind
	StatusCode int // set for KindBadStatus
	msg        string
	err        error // wrapped low-level error
}

func (e GatewayError) Error() string {
	// err already carries msg as its wrap prefix
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	slog.Debug("Gateway error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(GatewayError{Kind: kind, msg: msg, err: err}, kind.sentinel())
}

func NewBadStatusErr(msg string, statusCode int) error {
	slog.Debug("Gateway error: "+msg,
		slog.String("kind", string(KindBadStatus)),
		slog.Int("status_code", statusCode),
	)

	return errs.Mark(GatewayError{Kind: KindBadStatus, StatusCode: statusCode, msg: msg}, errs.ErrUpstreamBadStatus)
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func (k GatewayErrorKind) sentinel() error {
	switch k {
	case KindBadStatus:
		return errs.ErrUpstreamBadStatus
	case KindBadPayload:
		return errs.ErrUpstreamBadPayload
	default:
		return errs.ErrUpstreamRequestFailed
	}
}

// Infrastructure-specific error kinds
const (
	KindTransport  GatewayErrorKind = "TRANSPORT"
	KindBadStatus  GatewayErrorKind = "BAD_STATUS"
	KindBadPayload GatewayErrorKind = "BAD_PAYLOAD"
)
