package database

import (
	"context"
	"errors"

	"pixgate/internal/domain/model"
)

// ErrAssetNotFound is returned when no visible asset matches the query.
// Soft-deleted and rejected assets are treated as not found.
var ErrAssetNotFound = errors.New("media asset not found")

type Retriever interface {
	GetByID(ctx context.Context, id, ownerID string) (*model.MediaAsset, error)
}
