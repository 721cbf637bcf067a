package client

import "errors"

// Typed upstream failures. Callers match with errors.Is and decide whether a
// cycle skips the item or aborts; the client itself never swallows them.
var (
	// ErrNotFound means the upstream answered 404: no such player or match.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited means 429 persisted through every retry attempt.
	ErrRateLimited = errors.New("rate limited by upstream API")

	// ErrUnauthorized means the API key was rejected (401/403). Never retried.
	ErrUnauthorized = errors.New("API authentication failed")
)
