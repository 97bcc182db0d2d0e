package validation

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"pixgate/internal/domain/entity"
)

type Config struct {
	MaxBytes         int64 `yaml:"max_bytes"`
	MaxAnimatedBytes int64 `yaml:"max_animated_bytes"`
	MinWidth         int   `yaml:"min_width"`
	MinHeight        int   `yaml:"min_height"`
	MaxWidth         int   `yaml:"max_width"`
	MaxHeight        int   `yaml:"max_height"`
}

// allowedFormats is the closed set of true formats the pipeline admits,
// keyed by the MIME type the signature sniffer reports.
var allowedFormats = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Validator classifies raw upload bytes against the format and dimension
// policy. It inspects content, never the declared type, and has no side
// effects.
type Validator struct {
	cfg *Config
}

func New(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate returns the detected MIME type of a well-formed, in-policy image,
// or an ErrInvalidFile with a machine-readable reason.
func (v *Validator) Validate(raw entity.RawUpload) (string, error) {
	if len(raw.Bytes) == 0 {
		return "", &entity.InvalidFileError{Reason: entity.ReasonEmptyFile}
	}

	detected := mimetype.Detect(raw.Bytes).String()
	detected = strings.TrimSpace(strings.Split(detected, ";")[0])

	if !allowedFormats[detected] {
		return "", &entity.InvalidFileError{
			Reason: entity.ReasonUnsupportedFormat,
			Detail: fmt.Sprintf("detected %s", detected),
		}
	}

	if err := v.checkDeclaredType(raw.DeclaredMimeType, detected); err != nil {
		return "", err
	}

	ceiling := v.cfg.MaxBytes
	if detected == "image/gif" {
		ceiling = v.cfg.MaxAnimatedBytes
	}
	if int64(len(raw.Bytes)) > ceiling {
		return "", &entity.InvalidFileError{
			Reason: entity.ReasonFormatTooLarge,
			Detail: fmt.Sprintf("%d bytes over the %s ceiling of %d", len(raw.Bytes), detected, ceiling),
		}
	}

	if err := v.checkDimensions(raw.Bytes); err != nil {
		return "", err
	}

	return detected, nil
}

// checkDeclaredType rejects spoofed uploads: a declared image type that
// disagrees with the signature indicates the caller is lying about the
// content, so the file is never silently reinterpreted.
func (v *Validator) checkDeclaredType(declared, detected string) error {
	declared = strings.TrimSpace(strings.Split(declared, ";")[0])
	if declared == "" || declared == "application/octet-stream" {
		return nil
	}

	if declared != detected {
		return &entity.InvalidFileError{
			Reason: entity.ReasonTypeMismatch,
			Detail: fmt.Sprintf("declared %s, detected %s", declared, detected),
		}
	}

	return nil
}

// checkDimensions reads only the image header. A header that fails to decode
// is not rejected here: the signature already matched, so the sanitizer gets
// to decide whether the file is corrupt.
func (v *Validator) checkDimensions(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	if cfg.Width > v.cfg.MaxWidth || cfg.Height > v.cfg.MaxHeight {
		return &entity.InvalidFileError{
			Reason: entity.ReasonDimensionsTooBig,
			Detail: fmt.Sprintf("%dx%d exceeds %dx%d", cfg.Width, cfg.Height, v.cfg.MaxWidth, v.cfg.MaxHeight),
		}
	}
	if cfg.Width < v.cfg.MinWidth || cfg.Height < v.cfg.MinHeight {
		return &entity.InvalidFileError{
			Reason: entity.ReasonDimensionsTooSmall,
			Detail: fmt.Sprintf("%dx%d below minimum %dx%d", cfg.Width, cfg.Height, v.cfg.MinWidth, v.cfg.MinHeight),
		}
	}

	return nil
}
