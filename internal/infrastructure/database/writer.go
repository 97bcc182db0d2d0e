package database

import (
	"context"

	"pixgate/internal/domain/model"
)

type AssetWriter struct {
	db *Database
}

func NewAssetWriter(db *Database) *AssetWriter {
	return &AssetWriter{db: db}
}

func (w *AssetWriter) Create(ctx context.Context, asset *model.MediaAsset) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	_, err := w.db.Pool.Exec(ctx, `
INSERT INTO media_assets (
	id, owner_id, owner_context_id, asset_type, purpose,
	storage_key, thumbnail_key, declared_mime_type, detected_mime_type,
	original_byte_size, sanitized_byte_size, width, height,
	admission_status, admission_reason, admission_confidence,
	metadata_stripped, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`,
		asset.ID, asset.OwnerID, asset.OwnerContextID, asset.AssetType, asset.Purpose,
		asset.StorageKey, asset.ThumbnailKey, asset.DeclaredMimeType, asset.DetectedMimeType,
		asset.OriginalByteSize, asset.SanitizedByteSize, asset.Width, asset.Height,
		asset.AdmissionStatus, asset.AdmissionReason, asset.AdmissionConfidence,
		asset.MetadataStripped, asset.CreatedAt,
	)

	return err
}
