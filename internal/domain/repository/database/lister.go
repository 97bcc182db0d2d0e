package database

import (
	"context"
	"time"

	"pixgate/internal/domain/model"
)

// Lister defines the interface for listing an owner's visible assets.
type Lister interface {
	GetByOwner(ctx context.Context, ownerID string, since, until *time.Time) ([]model.MediaAsset, error)
}
