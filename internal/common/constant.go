// Package common contains shared constants and sentinel errors used across
// the expense tracker client.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the session token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName is the header used to correlate client logs with
	// server-side request logs.
	RequestIDHeaderName = "X-Request-ID"

	// SessionTokenKey is the single session store key holding the bearer token.
	SessionTokenKey = "token"
)
