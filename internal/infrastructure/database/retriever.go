package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pixgate/internal/domain/model"
	"pixgate/internal/domain/repository/database"
)

type AssetRetriever struct {
	db *Database
}

func NewAssetRetriever(db *Database) *AssetRetriever {
	return &AssetRetriever{db: db}
}

const assetColumns = `
	id, owner_id, owner_context_id, asset_type, purpose,
	storage_key, thumbnail_key, declared_mime_type, detected_mime_type,
	original_byte_size, sanitized_byte_size, width, height,
	admission_status, admission_reason, admission_confidence,
	metadata_stripped, created_at, deleted_at`

func (r *AssetRetriever) GetByID(ctx context.Context, id, ownerID string) (*model.MediaAsset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	row := r.db.Pool.QueryRow(ctx, `
SELECT`+assetColumns+`
FROM media_assets
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL AND admission_status <> $3
`, id, ownerID, model.AdmissionRejected)

	asset, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, database.ErrAssetNotFound
		}

		return nil, err
	}

	return asset, nil
}

func scanAsset(row pgx.Row) (*model.MediaAsset, error) {
	var asset model.MediaAsset
	err := row.Scan(
		&asset.ID, &asset.OwnerID, &asset.OwnerContextID, &asset.AssetType, &asset.Purpose,
		&asset.StorageKey, &asset.ThumbnailKey, &asset.DeclaredMimeType, &asset.DetectedMimeType,
		&asset.OriginalByteSize, &asset.SanitizedByteSize, &asset.Width, &asset.Height,
		&asset.AdmissionStatus, &asset.AdmissionReason, &asset.AdmissionConfidence,
		&asset.MetadataStripped, &asset.CreatedAt, &asset.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &asset, nil
}
