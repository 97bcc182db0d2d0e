package usecase

import (
	"context"
	"time"

	"pixgate/internal/domain/dto"
	"pixgate/internal/domain/repository/database"
	"pixgate/internal/domain/repository/storage"
)

// Lister implements the Lister abstraction for listing an owner's assets.
type Lister struct {
	lister    database.Lister
	presigner storage.Presigner
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister, presigner storage.Presigner) *Lister {
	return &Lister{
		lister:    lister,
		presigner: presigner,
	}
}

// ListAssets retrieves the owner's visible assets with optional time filters.
func (l *Lister) ListAssets(ctx context.Context, ownerID string, since, until *time.Time) ([]dto.AssetDescriptor, error) {
	assets, err := l.lister.GetByOwner(ctx, ownerID, since, until)
	if err != nil {
		return nil, err
	}

	descriptors := make([]dto.AssetDescriptor, 0, len(assets))
	for i := range assets {
		descriptor, err := describeAsset(ctx, l.presigner, &assets[i])
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}
