package store

import (
	"context"
	"errors"

	"github.com/navicore/regexgen/pattern"
)

// PatternsKey is the one fixed logical key the pattern list lives under.
// It is the key the original client used, so existing data stays readable.
const PatternsKey = "regexgen_patterns"

var (
	// ErrUnavailable means the backing store could not be reached.
	ErrUnavailable = errors.New("pattern store is unavailable")

	// ErrMalformed means stored data exists but cannot be decoded.
	ErrMalformed = errors.New("stored pattern data is malformed")
)

// Store persists the ordered pattern list under PatternsKey.
//
// The contract is last-write-wins with no versioning: concurrent writers
// can silently clobber each other's saved lists.
type Store interface {
	// Load returns the stored pattern list. An absent key is not an
	// error: it yields an empty list.
	Load(ctx context.Context) ([]pattern.Pattern, error)

	// Save replaces the stored pattern list.
	Save(ctx context.Context, patterns []pattern.Pattern) error

	// Shutdown releases the store's connections.
	Shutdown()
}
