package todo

import "context"

// Store defines snapshot persistence for a List.
type Store interface {
	// Load returns the persisted list. It never fails: a missing or
	// unreadable snapshot yields an empty list.
	Load(ctx context.Context) *List

	// Save replaces the snapshot with the given list.
	Save(ctx context.Context, list *List) error
}
