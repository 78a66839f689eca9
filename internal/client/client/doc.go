// Package client contains client-side building blocks for the expense tracker.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the finance backend: Login, Register, GetProfile, UpdateProfile.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that attaches
//     the bearer token, tags every request with an X-Request-ID and turns
//     non-2xx responses into *APIError values.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. HTTP failures are *APIError, which
// also matches ErrUnauthorized and ErrNotFound through errors.Is. A 2xx body
// that is not the expected JSON wraps ErrMalformedResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
