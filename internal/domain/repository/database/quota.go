package database

import "context"

// QuotaReader recomputes an owner's storage consumption from persisted state.
// There is no separately-mutated counter to drift.
type QuotaReader interface {
	UsedBytes(ctx context.Context, ownerID string) (int64, error)
}
