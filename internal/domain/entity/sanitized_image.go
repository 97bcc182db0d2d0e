package entity

// SanitizedImage is the normalizer's output: a metadata-free full-size buffer,
// a derived thumbnail, and the pixel dimensions of the sanitized image.
type SanitizedImage struct {
	Full              []byte
	Thumbnail         []byte
	MimeType          string
	ThumbnailMimeType string
	Width             int
	Height            int
}
