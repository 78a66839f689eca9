// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNoSession = errors.New("no session token")

	// Validation errors.
	ErrorIncorrectAmount = errors.New("amount must be a non-negative number")
)
