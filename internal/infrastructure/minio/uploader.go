package minio

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"pixgate/pkg/logger"
)

// Uploader writes sanitized buffers under pipeline-generated keys and issues
// short-lived presigned read URLs for them.
type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) Put(ctx context.Context, key string, body []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("minio put failed", "key", key, "err", err.Error())

		return err
	}

	return nil
}

func (u *Uploader) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	presigned, err := u.minioClient.PresignedGetObject(ctx, u.cfg.Bucket, key, ttl, nil)
	if err != nil {
		return "", err
	}

	return presigned.String(), nil
}
