package abstraction

import (
	"context"
	"time"

	"pixgate/internal/domain/dto"
)

type Lister interface {
	ListAssets(ctx context.Context, ownerID string, since, until *time.Time) ([]dto.AssetDescriptor, error)
}
