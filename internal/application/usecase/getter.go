package usecase

import (
	"context"
	"time"

	"pixgate/internal/domain/dto"
	"pixgate/internal/domain/model"
	"pixgate/internal/domain/repository/database"
	"pixgate/internal/domain/repository/storage"
)

const signedURLTTL = 5 * time.Minute

// Getter implements the Getter abstraction for retrieving one owned asset.
type Getter struct {
	retriever database.Retriever
	presigner storage.Presigner
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever, presigner storage.Presigner) *Getter {
	return &Getter{
		retriever: retriever,
		presigner: presigner,
	}
}

// GetAsset retrieves one visible asset scoped to its owner and attaches
// short-lived presigned URLs.
func (g *Getter) GetAsset(ctx context.Context, id, ownerID string) (dto.AssetDescriptor, error) {
	asset, err := g.retriever.GetByID(ctx, id, ownerID)
	if err != nil {
		return dto.AssetDescriptor{}, err
	}

	return describeAsset(ctx, g.presigner, asset)
}

func describeAsset(ctx context.Context, presigner storage.Presigner, asset *model.MediaAsset) (dto.AssetDescriptor, error) {
	url, err := presigner.PresignGet(ctx, asset.StorageKey, signedURLTTL)
	if err != nil {
		return dto.AssetDescriptor{}, err
	}

	thumbURL, err := presigner.PresignGet(ctx, asset.ThumbnailKey, signedURLTTL)
	if err != nil {
		return dto.AssetDescriptor{}, err
	}

	return dto.AssetDescriptor{
		ID:           asset.ID,
		URL:          url,
		ThumbnailURL: thumbURL,
		MimeType:     asset.DetectedMimeType,
		Size:         asset.SanitizedByteSize,
		Width:        asset.Width,
		Height:       asset.Height,
		Status:       string(asset.AdmissionStatus),
		Uploaded:     asset.CreatedAt.Unix(),
	}, nil
}
