package sanitize

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/semaphore"

	_ "golang.org/x/image/webp"

	"pixgate/internal/domain/entity"
)

type Config struct {
	JPEGQuality   int   `yaml:"jpeg_quality"`
	ThumbnailSize int   `yaml:"thumbnail_size"`
	Workers       int64 `yaml:"workers"`
}

// Sanitizer strips embedded metadata and normalizes validated image bytes.
// Static images are decoded and re-encoded to JPEG, which cannot carry the
// original EXIF/ICC/GPS segments over. Animated GIFs are decoded frame-wise
// and re-encoded, dropping comment and application extension blocks while
// keeping the animation intact.
//
// Decode and encode are CPU-bound, so concurrent sanitize calls are bounded
// by a weighted semaphore instead of running inline on every request
// goroutine.
type Sanitizer struct {
	cfg *Config
	sem *semaphore.Weighted
}

func New(cfg *Config) *Sanitizer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = int64(runtime.GOMAXPROCS(0))
	}

	return &Sanitizer{
		cfg: cfg,
		sem: semaphore.NewWeighted(workers),
	}
}

// Sanitize produces a metadata-free full-size buffer plus a thumbnail.
// Bytes that passed signature sniffing but cannot be decoded surface as
// ErrCorruptImage.
func (s *Sanitizer) Sanitize(ctx context.Context, data []byte, detectedMime string) (entity.SanitizedImage, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return entity.SanitizedImage{}, err
	}
	defer s.sem.Release(1)

	if detectedMime == "image/gif" {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return entity.SanitizedImage{}, fmt.Errorf("%w: %v", entity.ErrCorruptImage, err)
		}
		if len(g.Image) > 1 {
			return s.sanitizeAnimated(g)
		}
	}

	return s.sanitizeStatic(data)
}

func (s *Sanitizer) sanitizeStatic(data []byte) (entity.SanitizedImage, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return entity.SanitizedImage{}, fmt.Errorf("%w: %v", entity.ErrCorruptImage, err)
	}

	full, err := s.encodeJPEG(img)
	if err != nil {
		return entity.SanitizedImage{}, err
	}

	thumbnail, err := s.encodeJPEG(s.thumbnailOf(img))
	if err != nil {
		return entity.SanitizedImage{}, err
	}

	bounds := img.Bounds()

	return entity.SanitizedImage{
		Full:              full,
		Thumbnail:         thumbnail,
		MimeType:          "image/jpeg",
		ThumbnailMimeType: "image/jpeg",
		Width:             bounds.Dx(),
		Height:            bounds.Dy(),
	}, nil
}

// sanitizeAnimated re-encodes an animated GIF from its decoded frames. The
// GIF struct holds frames, delays and loop count only, so extension blocks
// from the source never reach the output.
func (s *Sanitizer) sanitizeAnimated(g *gif.GIF) (entity.SanitizedImage, error) {
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return entity.SanitizedImage{}, fmt.Errorf("%w: %v", entity.ErrCorruptImage, err)
	}

	var first image.Image = g.Image[0]
	thumbnail, err := s.encodeJPEG(s.thumbnailOf(first))
	if err != nil {
		return entity.SanitizedImage{}, err
	}

	width := g.Config.Width
	height := g.Config.Height
	if width == 0 || height == 0 {
		bounds := g.Image[0].Bounds()
		width = bounds.Dx()
		height = bounds.Dy()
	}

	return entity.SanitizedImage{
		Full:              buf.Bytes(),
		Thumbnail:         thumbnail,
		MimeType:          "image/gif",
		ThumbnailMimeType: "image/jpeg",
		Width:             width,
		Height:            height,
	}, nil
}

func (s *Sanitizer) thumbnailOf(img image.Image) image.Image {
	size := s.cfg.ThumbnailSize
	if size <= 0 {
		size = 320
	}

	return imaging.Fit(img, size, size, imaging.Lanczos)
}

func (s *Sanitizer) encodeJPEG(img image.Image) ([]byte, error) {
	quality := s.cfg.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrCorruptImage, err)
	}

	return buf.Bytes(), nil
}
