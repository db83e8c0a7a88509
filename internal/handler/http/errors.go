package http

import "errors"

// Sentinel errors used by the authentication middleware when checking the
// "Authorization" HTTP header.
var (
	// ErrEmptyAuthorizationHeader is logged when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrWrongAPIKey is logged when the header is present but does not
	// match the configured API key.
	ErrWrongAPIKey = errors.New("wrong API key in `Authorization` header")
)
