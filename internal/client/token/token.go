// Package token decodes the claims of a bearer credential without verifying
// its signature. Decoding is advisory: it tells the client who the user is
// and whether the credential has expired, while the backend remains the only
// place that decides whether a credential is trusted.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid is wrapped by every decode failure.
	ErrInvalid = errors.New("invalid token")

	ErrMalformed     = fmt.Errorf("%w: malformed", ErrInvalid)
	ErrMissingExpiry = fmt.Errorf("%w: missing exp claim", ErrInvalid)
)

// Claims is the decoded payload of a credential. Email is preferred as the
// user identifier; older tokens only carry sub.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Identifier returns the explicit email claim when present, else the subject.
func (c *Claims) Identifier() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

var segments = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode parses the claims segment of tok. It needs at least two
// dot-separated segments, and the second must be base64url-encoded JSON
// carrying an exp claim.
func Decode(tok string) (*Claims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 || parts[1] == "" {
		return nil, ErrMalformed
	}

	raw, err := segments.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode claims segment: %v", ErrInvalid, err)
	}

	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: parse claims: %v", ErrInvalid, err)
	}
	if c.ExpiresAt == nil {
		return nil, ErrMissingExpiry
	}

	return &c, nil
}

// IsExpired reports whether the credential expired at or before now.
// Expiry is only evaluated when a credential is decoded; nothing re-checks it
// on a timer, so a session that lapses mid-use is caught by the next decode
// or by the backend rejecting the next request.
func IsExpired(c *Claims, now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return true
	}
	return !c.ExpiresAt.After(now)
}
