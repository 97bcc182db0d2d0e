package storage

import "context"

// Remover deletes objects, used by the quarantine/cleanup flow and by the
// compensating path when a thumbnail write fails.
type Remover interface {
	Remove(ctx context.Context, key string) error
}
