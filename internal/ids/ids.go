// Package ids provides identifier generation for resume list items.
package ids

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Generator produces opaque identifiers for list items. An ID is assigned
// exactly once, at item creation, and never changes afterwards.
//
// Uniqueness is advisory: implementations need only make collisions
// vanishingly unlikely within one document's lists (small, human-entered
// collections). A collision within a list is undefined behavior; callers
// wanting stronger guarantees should swap in UUID.
type Generator interface {
	NewID() string
}

const (
	tokenLength   = 7
	base36Charset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// ShortToken generates 7-character base36 tokens. It is not
// cryptographically strong.
type ShortToken struct{}

// NewID returns a fresh short token.
func (ShortToken) NewID() string {
	var b strings.Builder
	b.Grow(tokenLength)
	for i := 0; i < tokenLength; i++ {
		b.WriteByte(base36Charset[rand.IntN(len(base36Charset))])
	}
	return b.String()
}

// UUID generates RFC 4122 UUID strings. A drop-in replacement for
// ShortToken when collision resistance matters.
type UUID struct{}

// NewID returns a fresh UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}
