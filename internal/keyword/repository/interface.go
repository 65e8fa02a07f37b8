package repository

import "context"

// Repository is the interface for keyword map storage, persisted
// independently of the task collection.
type Repository interface {
	// Snapshot returns a copy of the mapping safe to hand to the
	// parser while the live map keeps mutating.
	Snapshot(ctx context.Context) (map[string]string, error)

	// Set stores or replaces a keyword mapping and persists.
	Set(ctx context.Context, key, category string) error

	// Remove deletes a keyword mapping and persists; removed is false
	// when the key was absent.
	Remove(ctx context.Context, key string) (removed bool, err error)
}
