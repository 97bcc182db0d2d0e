package database

import (
	"context"

	"pixgate/internal/domain/model"
)

// Writer persists the metadata row of an admitted asset. The pipeline calls
// it exactly once per upload, strictly after the blob write succeeded.
type Writer interface {
	Create(ctx context.Context, asset *model.MediaAsset) error
}
