package nameindex

import (
	"context"
	"strings"
)

// Index records names that are already taken. Implementations must be safe
// for concurrent use and must make Add atomic with respect to the existence
// check, so two callers cannot claim the same name.
type Index interface {
	// Exists reports whether name is already taken.
	Exists(ctx context.Context, name string) (bool, error)

	// Add claims name. Returns ErrNameTaken if it is already present.
	Add(ctx context.Context, name string) error

	// Remove releases a previously claimed name. Removing an unknown name is
	// not an error.
	Remove(ctx context.Context, name string) error
}

// normalize maps a raw input to its index key. Uniqueness is
// case-insensitive and ignores surrounding whitespace.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
