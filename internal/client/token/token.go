// Package token reads display information out of a session token without
// verifying it. The token stays opaque to the client: decoding is purely
// cosmetic and every failure simply means "unknown".
package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// claims are the only payload fields the client looks at.
type claims struct {
	Username any `json:"username"`
	Subject  any `json:"sub"`
}

// DisplayName extracts a user name from the payload (second dot-separated
// segment) of tok. It prefers the "username" claim and falls back to "sub".
// ok is false when tok has fewer than two segments, the segment is not
// base64, the payload is not a JSON object, or neither claim is a non-empty
// string. DisplayName never panics.
func DisplayName(tok string) (name string, ok bool) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return "", false
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return "", false
	}

	var c claims
	if err := json.Unmarshal(payload, &c); err != nil {
		return "", false
	}

	if s, isString := c.Username.(string); isString && s != "" {
		return s, true
	}
	if s, isString := c.Subject.(string); isString && s != "" {
		return s, true
	}
	return "", false
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// decodeSegment accepts base64url (the JWT alphabet, padded or not) and
// falls back to the standard alphabet.
func decodeSegment(seg string) ([]byte, error) {
	b, err := segmentParser.DecodeSegment(seg)
	if err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(seg)
}
