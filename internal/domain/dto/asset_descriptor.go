package dto

// AssetDescriptor is the wire representation of one media asset returned by
// the get and list endpoints. URLs are presigned and short-lived.
type AssetDescriptor struct {
	ID           string  `json:"id"`
	URL          string  `json:"url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	MimeType     string  `json:"type"`
	Size         int64   `json:"size"`
	Width        *int    `json:"width"`
	Height       *int    `json:"height"`
	Status       string  `json:"admission_status"`
	Uploaded     int64   `json:"uploaded"`
}
