package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"pixgate/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err := r.minioClient.RemoveObject(ctx, r.cfg.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to remove object", "key", key, "err", err.Error())

		return err
	}

	return nil
}
