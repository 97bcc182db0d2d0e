package sanitize

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixgate/internal/domain/entity"
)

func newSanitizer() *Sanitizer {
	return New(&Config{JPEGQuality: 85, ThumbnailSize: 64, Workers: 1})
}

// jpegWithExif builds a baseline JPEG and splices an APP1 Exif segment in
// right after the SOI marker, the way camera firmware writes it.
func jpegWithExif(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	encoded := buf.Bytes()
	require.Equal(t, []byte{0xFF, 0xD8}, encoded[:2], "missing SOI marker")

	// APP1 payload: "Exif\0\0" plus a minimal little-endian TIFF header with
	// a fake GPS latitude tag id. The decoder skips it, the bytes are there.
	payload := []byte("Exif\x00\x00MM\x00\x2a\x00\x00\x00\x08\x00\x01\x88\x02")
	segment := make([]byte, 0, 4+len(payload))
	segment = append(segment, 0xFF, 0xE1)
	length := len(payload) + 2
	segment = append(segment, byte(length>>8), byte(length&0xFF))
	segment = append(segment, payload...)

	out := make([]byte, 0, len(encoded)+len(segment))
	out = append(out, encoded[:2]...)
	out = append(out, segment...)
	out = append(out, encoded[2:]...)

	require.True(t, bytes.Contains(out, []byte("Exif")))

	return out
}

func animatedGIF(t *testing.T, frames int) []byte {
	t.Helper()

	g := &gif.GIF{LoopCount: 0}
	palette := color.Palette{color.Black, color.White, color.RGBA{R: 255, A: 255}}
	for i := 0; i < frames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, 24, 24), palette)
		frame.SetColorIndex(i%24, i%24, uint8(1+i%2))
		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 5)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))

	return buf.Bytes()
}

func TestSanitizeStripsExifSegment(t *testing.T) {
	s := newSanitizer()

	source := jpegWithExif(t, 120, 80)
	out, err := s.Sanitize(context.Background(), source, "image/jpeg")
	require.NoError(t, err)

	assert.False(t, bytes.Contains(out.Full, []byte("Exif")), "metadata survived re-encode")
	assert.False(t, bytes.Contains(out.Thumbnail, []byte("Exif")))
	assert.Equal(t, "image/jpeg", out.MimeType)
	assert.Equal(t, 120, out.Width)
	assert.Equal(t, 80, out.Height)
}

func TestSanitizeThumbnailFitsBoundingBox(t *testing.T) {
	s := newSanitizer()

	out, err := s.Sanitize(context.Background(), jpegWithExif(t, 400, 200), "image/jpeg")
	require.NoError(t, err)

	thumb, err := jpeg.Decode(bytes.NewReader(out.Thumbnail))
	require.NoError(t, err)

	bounds := thumb.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 64)
	assert.LessOrEqual(t, bounds.Dy(), 64)
	// Aspect ratio is preserved, not squashed to a square.
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 32, bounds.Dy())
}

func TestSanitizeKeepsAnimationFrames(t *testing.T) {
	s := newSanitizer()

	out, err := s.Sanitize(context.Background(), animatedGIF(t, 3), "image/gif")
	require.NoError(t, err)

	assert.Equal(t, "image/gif", out.MimeType)
	assert.Equal(t, "image/jpeg", out.ThumbnailMimeType)

	decoded, err := gif.DecodeAll(bytes.NewReader(out.Full))
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 3)
	assert.Equal(t, 24, out.Width)
	assert.Equal(t, 24, out.Height)
}

func TestSanitizeSingleFrameGIFBecomesStatic(t *testing.T) {
	s := newSanitizer()

	out, err := s.Sanitize(context.Background(), animatedGIF(t, 1), "image/gif")
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", out.MimeType)
}

func TestSanitizeCorruptBytes(t *testing.T) {
	s := newSanitizer()

	// Valid JPEG signature, garbage body.
	corrupt := append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, bytes.Repeat([]byte{0xAB}, 200)...)

	_, err := s.Sanitize(context.Background(), corrupt, "image/jpeg")
	assert.True(t, errors.Is(err, entity.ErrCorruptImage))

	_, err = s.Sanitize(context.Background(), []byte("GIF89a but not really"), "image/gif")
	assert.True(t, errors.Is(err, entity.ErrCorruptImage))
}

func TestSanitizeHonorsContextCancellation(t *testing.T) {
	s := New(&Config{Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.sem.Acquire(ctx, 1))
	defer s.sem.Release(1)

	cancel()
	_, err := s.Sanitize(ctx, jpegWithExif(t, 32, 32), "image/jpeg")
	assert.ErrorIs(t, err, context.Canceled)
}
