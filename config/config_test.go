package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MINIO_ROOT_USER", "minioadmin")
	t.Setenv("MINIO_ROOT_PASSWORD", "minioadmin")
	t.Setenv("DATABASE_URI", "postgres://localhost:5432/pixgate")
	t.Setenv("BROKER_URI", "redis://localhost:6379")
	t.Setenv("CLASSIFIER_API_KEY", "key")

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, int64(10485760), cfg.Validation.MaxBytes)
	assert.Equal(t, int64(5242880), cfg.Validation.MaxAnimatedBytes)
	assert.Equal(t, int64(104857600), cfg.Uploader.QuotaBytes)
	assert.Equal(t, "media", cfg.MinIOUploader.Bucket)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("./config.yml")
	require.Error(t, err)
}
