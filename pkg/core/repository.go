package core

import "context"

// Repository defines the contract for persisting notes.
// The store is append-only: notes are never reordered, edited or removed.
type Repository interface {
	// Append adds a note as the last line of the store, creating the store if absent.
	Append(ctx context.Context, n Note) error

	// Read returns the full raw content of the store.
	// Implementations wrap any failure around ErrStoreNotFound.
	Read(ctx context.Context) (string, error)
}
