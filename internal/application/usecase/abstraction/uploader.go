package abstraction

import (
	"context"

	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/model"
)

// UploadInput is everything the transport receiver hands to the pipeline.
type UploadInput struct {
	PrincipalID    string
	OwnerContextID string
	AssetType      model.AssetType
	Purpose        model.Purpose
	Raw            entity.RawUpload
}

type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (entity.UploadResult, error)
}
