package database

import (
	"context"
	"time"

	"pixgate/internal/domain/model"
)

type AssetLister struct {
	db *Database
}

func NewAssetLister(db *Database) *AssetLister {
	return &AssetLister{db: db}
}

func (l *AssetLister) GetByOwner(ctx context.Context, ownerID string, since, until *time.Time) ([]model.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	query := `
SELECT` + assetColumns + `
FROM media_assets
WHERE owner_id = $1 AND deleted_at IS NULL AND admission_status <> $2`
	args := []any{ownerID, model.AdmissionRejected}

	if since != nil {
		args = append(args, *since)
		query += ` AND created_at >= $3`
	}
	if until != nil {
		args = append(args, *until)
		if since != nil {
			query += ` AND created_at <= $4`
		} else {
			query += ` AND created_at <= $3`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := l.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []model.MediaAsset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}

	return assets, rows.Err()
}
