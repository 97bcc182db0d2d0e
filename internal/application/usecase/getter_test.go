package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixgate/internal/domain/model"
	"pixgate/internal/domain/repository/database"
)

type fakeRetriever struct {
	asset *model.MediaAsset
	err   error
}

func (f *fakeRetriever) GetByID(_ context.Context, _, _ string) (*model.MediaAsset, error) {
	return f.asset, f.err
}

type fakeDBLister struct {
	assets []model.MediaAsset
}

func (f *fakeDBLister) GetByOwner(_ context.Context, _ string, _, _ *time.Time) ([]model.MediaAsset, error) {
	return f.assets, nil
}

type fakePresigner struct {
	err error
}

func (f *fakePresigner) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://signed.example.com/" + key, nil
}

func sampleAsset() model.MediaAsset {
	width, height := 640, 480

	return model.MediaAsset{
		ID:                "asset-1",
		OwnerID:           "user-1",
		StorageKey:        "media/user-1/asset-1.jpg",
		ThumbnailKey:      "media/user-1/asset-1_thumb.jpg",
		DetectedMimeType:  "image/jpeg",
		SanitizedByteSize: 2048,
		Width:             &width,
		Height:            &height,
		AdmissionStatus:   model.AdmissionApproved,
		MetadataStripped:  true,
		CreatedAt:         time.Unix(1700000000, 0).UTC(),
	}
}

func TestGetAssetSignsBothURLs(t *testing.T) {
	asset := sampleAsset()
	g := NewGetter(&fakeRetriever{asset: &asset}, &fakePresigner{})

	got, err := g.GetAsset(context.Background(), "asset-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "https://signed.example.com/media/user-1/asset-1.jpg", got.URL)
	assert.Equal(t, "https://signed.example.com/media/user-1/asset-1_thumb.jpg", got.ThumbnailURL)
	assert.Equal(t, int64(2048), got.Size)
	assert.Equal(t, "APPROVED", got.Status)
	assert.Equal(t, int64(1700000000), got.Uploaded)
}

func TestGetAssetNotFoundPassesThrough(t *testing.T) {
	g := NewGetter(&fakeRetriever{err: database.ErrAssetNotFound}, &fakePresigner{})

	_, err := g.GetAsset(context.Background(), "nope", "user-1")

	assert.True(t, errors.Is(err, database.ErrAssetNotFound))
}

func TestListAssetsDescribesEach(t *testing.T) {
	first := sampleAsset()
	second := sampleAsset()
	second.ID = "asset-2"
	second.StorageKey = "media/user-1/asset-2.jpg"

	l := NewLister(&fakeDBLister{assets: []model.MediaAsset{first, second}}, &fakePresigner{})

	got, err := l.ListAssets(context.Background(), "user-1", nil, nil)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "asset-1", got[0].ID)
	assert.Contains(t, got[1].URL, "asset-2.jpg")
}

func TestListAssetsEmptyIsNotNil(t *testing.T) {
	l := NewLister(&fakeDBLister{}, &fakePresigner{})

	got, err := l.ListAssets(context.Background(), "user-1", nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAssetPresignFailure(t *testing.T) {
	asset := sampleAsset()
	g := NewGetter(&fakeRetriever{asset: &asset}, &fakePresigner{err: errors.New("connection refused")})

	_, err := g.GetAsset(context.Background(), "asset-1", "user-1")

	assert.Error(t, err)
}
