package utils

import "strings"

// mimeTypeToExtension maps the image MIME types the pipeline can emit to their
// typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/jpeg; charset=binary")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}
