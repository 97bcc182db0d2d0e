package minio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *minio.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(TestAccessKey, TestSecretKey, ""),
		Secure:          false,
		TrailingHeaders: true,
	})
	if err != nil {
		t.Fatal("Failed to create minio client:", err)
	}

	if err := client.MakeBucket(ctx, BucketName, minio.MakeBucketOptions{}); err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	return client
}

func TestPutAndPresign(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	uploader := NewUploader(client, &UploaderConfig{
		Timeout: 3000,
		Bucket:  BucketName,
	})

	body := bytes.Repeat([]byte{0xFF, 0xD8, 0xAB}, 4096)
	key := "media/user-1/asset-1.jpg"

	require.NoError(t, uploader.Put(ctx, key, body, "image/jpeg"))

	stat, err := client.StatObject(ctx, BucketName, key, minio.StatObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), stat.Size)
	assert.Equal(t, "image/jpeg", stat.ContentType)

	t.Run("presigned url serves the object", func(t *testing.T) {
		url, err := uploader.PresignGet(ctx, key, 5*time.Minute)
		require.NoError(t, err)
		assert.Contains(t, url, key)

		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		got, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("remove deletes the object", func(t *testing.T) {
		remover := NewRemover(client, &RemoverConfig{Timeout: 3000, Bucket: BucketName})
		require.NoError(t, remover.Remove(ctx, key))

		_, err := client.StatObject(ctx, BucketName, key, minio.StatObjectOptions{})
		assert.Error(t, err)
	})

	t.Run("put into a missing bucket fails", func(t *testing.T) {
		bad := NewUploader(client, &UploaderConfig{Timeout: 3000, Bucket: "no-such-bucket"})
		err := bad.Put(ctx, key, []byte("x"), "image/jpeg")
		require.Error(t, err)
	})
}

func TestEnsureBucketIsIdempotent(t *testing.T) {
	client := setupMinio(t)
	ctx := context.Background()

	c := &Client{MinioClient: client}

	require.NoError(t, c.EnsureBucket(ctx, "pixgate-media"))
	require.NoError(t, c.EnsureBucket(ctx, "pixgate-media"))

	exists, err := client.BucketExists(ctx, "pixgate-media")
	require.NoError(t, err)
	assert.True(t, exists)
}
