package abstraction

import (
	"context"

	"pixgate/internal/domain/dto"
)

// Getter defines the interface for retrieving one owned asset.
type Getter interface {
	GetAsset(ctx context.Context, id, ownerID string) (dto.AssetDescriptor, error)
}
