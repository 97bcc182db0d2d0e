package entity

import "pixgate/internal/domain/model"

// UploadResult is what a successful (or degraded-but-successful) upload
// returns to the caller.
type UploadResult struct {
	AssetID      string
	URL          string
	ThumbnailURL string
	Width        int
	Height       int
	Status       model.AdmissionStatus
}
