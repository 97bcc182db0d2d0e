package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pixgate/internal/application/usecase/abstraction"
	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/model"
	"pixgate/internal/domain/repository/broker"
	"pixgate/internal/domain/repository/database"
	"pixgate/internal/domain/repository/storage"
	"pixgate/pkg/logger"
	"pixgate/pkg/utils"
)

type UploaderConfig struct {
	// QuotaBytes is the per-owner ceiling on the sum of sanitized sizes.
	QuotaBytes int64 `yaml:"quota_bytes"`
}

// Stage interfaces, satisfied by the validation, sanitize and safety
// packages. Kept narrow so tests can inject fakes per stage.
type Validator interface {
	Validate(raw entity.RawUpload) (string, error)
}

type Sanitizer interface {
	Sanitize(ctx context.Context, data []byte, detectedMime string) (entity.SanitizedImage, error)
}

type Gate interface {
	Decide(ctx context.Context, sanitizedFull []byte, requestID string) model.Admission
}

// Uploader runs the ingestion pipeline for one request: authorize, validate,
// sanitize, gate, store blob, store row, publish review. Stages run strictly
// in order; the first failing stage terminates the request.
type Uploader struct {
	membership database.MembershipChecker
	quota      database.QuotaReader
	validator  Validator
	sanitizer  Sanitizer
	gate       Gate
	store      storage.Uploader
	presigner  storage.Presigner
	remover    storage.Remover
	writer     database.Writer
	publisher  broker.Publisher
	cfg        *UploaderConfig
	now        func() time.Time
}

func NewUploader(
	membership database.MembershipChecker,
	quota database.QuotaReader,
	validator Validator,
	sanitizer Sanitizer,
	gate Gate,
	store storage.Uploader,
	presigner storage.Presigner,
	remover storage.Remover,
	writer database.Writer,
	publisher broker.Publisher,
	cfg *UploaderConfig,
) *Uploader {
	return &Uploader{
		membership: membership,
		quota:      quota,
		validator:  validator,
		sanitizer:  sanitizer,
		gate:       gate,
		store:      store,
		presigner:  presigner,
		remover:    remover,
		writer:     writer,
		publisher:  publisher,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (u *Uploader) Upload(ctx context.Context, in abstraction.UploadInput) (entity.UploadResult, error) {
	traceID := in.Raw.RequestID

	if err := u.authorize(ctx, in); err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	// Cheap pre-check with the declared size, before any decode work.
	if err := u.checkQuota(ctx, in.PrincipalID, int64(len(in.Raw.Bytes))); err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	detectedMime, err := u.validator.Validate(in.Raw)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	sanitized, err := u.sanitizer.Sanitize(ctx, in.Raw.Bytes, detectedMime)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	// Gate before any durable write: a rejected image never reaches storage.
	admission := u.gate.Decide(ctx, sanitized.Full, traceID)
	if admission.Status == model.AdmissionRejected {
		logger.Info("upload rejected by safety gate",
			"trace_id", traceID, "owner", in.PrincipalID, "reason", admission.Reason)

		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, &entity.RejectedContentError{
			Reason:     admission.Reason,
			Confidence: admission.Confidence,
		})
	}

	// Re-check with the true size as late as possible before the blob write:
	// normalization can grow a file, and concurrent uploads may have consumed
	// quota since the pre-check.
	if err := u.checkQuota(ctx, in.PrincipalID, int64(len(sanitized.Full))); err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	asset := u.buildAsset(in, detectedMime, sanitized, admission)

	// Past this point caller cancellation is not honored: a half-finished
	// durable write is worse than one extra orphaned object.
	ctx = context.WithoutCancel(ctx)

	if err := u.storeBlobs(ctx, asset, sanitized); err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	if err := u.writer.Create(ctx, asset); err != nil {
		// Blob-without-row is the accepted inconsistency: the object stays
		// for the reconciliation sweep, keyed by this log line.
		logger.Error("metadata write failed after blob write",
			"trace_id", traceID, "owner", in.PrincipalID,
			"storage_key", asset.StorageKey, "thumbnail_key", asset.ThumbnailKey,
			"err", err.Error())

		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, entity.ErrPersistenceFailure)
	}

	if asset.AdmissionStatus == model.AdmissionNeedsReview {
		if err := u.publisher.Publish(ctx, asset.ID); err != nil {
			logger.Error("failed to publish asset to review queue",
				"trace_id", traceID, "asset_id", asset.ID, "err", err.Error())
		}
	}

	// Same short-lived presigned URLs the read surface hands out.
	url, err := u.presigner.PresignGet(ctx, asset.StorageKey, signedURLTTL)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}
	thumbURL, err := u.presigner.PresignGet(ctx, asset.ThumbnailKey, signedURLTTL)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("trace %s: %w", traceID, err)
	}

	return entity.UploadResult{
		AssetID:      asset.ID,
		URL:          url,
		ThumbnailURL: thumbURL,
		Width:        sanitized.Width,
		Height:       sanitized.Height,
		Status:       asset.AdmissionStatus,
	}, nil
}

func (u *Uploader) authorize(ctx context.Context, in abstraction.UploadInput) error {
	if in.PrincipalID == "" {
		return entity.ErrUnauthenticated
	}

	if in.Purpose == model.PurposeCampaign && in.OwnerContextID != "" && in.OwnerContextID != in.PrincipalID {
		verified, err := u.membership.IsVerifiedFor(ctx, in.PrincipalID, in.OwnerContextID)
		if err != nil {
			return fmt.Errorf("membership check: %w", err)
		}
		if !verified {
			return entity.ErrForbidden
		}
	}

	return nil
}

func (u *Uploader) checkQuota(ctx context.Context, ownerID string, incoming int64) error {
	used, err := u.quota.UsedBytes(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("quota lookup: %w", err)
	}
	if used+incoming > u.cfg.QuotaBytes {
		return entity.ErrQuotaExceeded
	}

	return nil
}

func (u *Uploader) buildAsset(in abstraction.UploadInput, detectedMime string,
	sanitized entity.SanitizedImage, admission model.Admission,
) *model.MediaAsset {
	asset := &model.MediaAsset{
		ID:                uuid.New().String(),
		OwnerID:           in.PrincipalID,
		AssetType:         in.AssetType,
		Purpose:           in.Purpose,
		DeclaredMimeType:  in.Raw.DeclaredMimeType,
		DetectedMimeType:  detectedMime,
		OriginalByteSize:  int64(len(in.Raw.Bytes)),
		SanitizedByteSize: int64(len(sanitized.Full)),
		AdmissionStatus:   admission.Status,
		MetadataStripped:  true,
		CreatedAt:         u.now().UTC(),
	}

	if in.OwnerContextID != "" {
		asset.OwnerContextID = &in.OwnerContextID
	}
	if sanitized.Width > 0 && sanitized.Height > 0 {
		asset.Width = &sanitized.Width
		asset.Height = &sanitized.Height
	}
	if admission.Reason != "" {
		asset.AdmissionReason = &admission.Reason
	}
	if admission.Confidence > 0 {
		asset.AdmissionConfidence = &admission.Confidence
	}

	ext := utils.GetExtensionFromMimeType(sanitized.MimeType)
	asset.StorageKey = fmt.Sprintf("media/%s/%s%s", in.PrincipalID, asset.ID, ext)
	asset.ThumbnailKey = fmt.Sprintf("media/%s/%s_thumb.jpg", in.PrincipalID, asset.ID)

	return asset
}

func (u *Uploader) storeBlobs(ctx context.Context, asset *model.MediaAsset, sanitized entity.SanitizedImage) error {
	if err := u.store.Put(ctx, asset.StorageKey, sanitized.Full, sanitized.MimeType); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStorageFailure, err)
	}

	if err := u.store.Put(ctx, asset.ThumbnailKey, sanitized.Thumbnail, sanitized.ThumbnailMimeType); err != nil {
		if removeErr := u.remover.Remove(ctx, asset.StorageKey); removeErr != nil {
			logger.Error("failed to remove full object after thumbnail write failed",
				"key", asset.StorageKey, "err", removeErr.Error())
		}

		return fmt.Errorf("%w: %v", entity.ErrStorageFailure, err)
	}

	return nil
}
