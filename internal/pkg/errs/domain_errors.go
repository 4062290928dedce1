package errs

import "errors"

// Sentinel errors shared across the usecase and gateway layers
var (
	// Upstream errors
	ErrUpstreamRequestFailed = errors.New("upstream request failed")
	ErrUpstreamBadStatus     = errors.New("upstream returned non-success status")
	ErrUpstreamBadPayload    = errors.New("upstream returned malformed payload")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
