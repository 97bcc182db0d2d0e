package database

import "context"

// QuotaReader sums sanitized sizes over an owner's non-deleted assets.
// Recomputing on every check trades one aggregate query for freedom from
// counter drift; the owner index keeps it cheap.
type QuotaReader struct {
	db *Database
}

func NewQuotaReader(db *Database) *QuotaReader {
	return &QuotaReader{db: db}
}

func (q *QuotaReader) UsedBytes(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, q.db.QueryTimeout)
	defer cancel()

	var used int64
	err := q.db.Pool.QueryRow(ctx, `
SELECT COALESCE(SUM(sanitized_byte_size), 0)
FROM media_assets
WHERE owner_id = $1 AND deleted_at IS NULL
`, ownerID).Scan(&used)
	if err != nil {
		return 0, err
	}

	return used, nil
}
