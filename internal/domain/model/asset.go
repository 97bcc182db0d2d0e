package model

import "time"

// AdmissionStatus is the pipeline's final categorization of an asset's content.
// It is set exactly once by the safety gate; only the external review workflow
// may change it afterwards.
type AdmissionStatus string

const (
	AdmissionPending     AdmissionStatus = "PENDING"
	AdmissionApproved    AdmissionStatus = "APPROVED"
	AdmissionNeedsReview AdmissionStatus = "NEEDS_REVIEW"
	AdmissionRejected    AdmissionStatus = "REJECTED"
)

// AssetType is the caller-declared kind of image being uploaded.
type AssetType string

const (
	AssetTypeGeneral AssetType = "general"
	AssetTypeAvatar  AssetType = "avatar"
)

func (t AssetType) Valid() bool {
	return t == AssetTypeGeneral || t == AssetTypeAvatar
}

// Purpose states on whose behalf the upload happens. PurposeCampaign means the
// caller claims to represent the entity named by the owner context id and must
// hold a verified relationship to it.
type Purpose string

const (
	PurposeProfile  Purpose = "profile"
	PurposeCampaign Purpose = "campaign"
)

func (p Purpose) Valid() bool {
	return p == PurposeProfile || p == PurposeCampaign
}

// MediaAsset is the durable record of one admitted upload. A row exists only
// if the sanitized binary was already stored; MetadataStripped is true for
// every persisted record.
type MediaAsset struct {
	ID                  string          `json:"id"`
	OwnerID             string          `json:"owner_id"`
	OwnerContextID      *string         `json:"owner_context_id"`
	AssetType           AssetType       `json:"asset_type"`
	Purpose             Purpose         `json:"purpose"`
	StorageKey          string          `json:"storage_key"`
	ThumbnailKey        string          `json:"thumbnail_key"`
	DeclaredMimeType    string          `json:"declared_mime_type"`
	DetectedMimeType    string          `json:"detected_mime_type"`
	OriginalByteSize    int64           `json:"original_byte_size"`
	SanitizedByteSize   int64           `json:"sanitized_byte_size"`
	Width               *int            `json:"width"`
	Height              *int            `json:"height"`
	AdmissionStatus     AdmissionStatus `json:"admission_status"`
	AdmissionReason     *string         `json:"admission_reason"`
	AdmissionConfidence *float64        `json:"admission_confidence"`
	MetadataStripped    bool            `json:"metadata_stripped"`
	CreatedAt           time.Time       `json:"created_at"`
	DeletedAt           *time.Time      `json:"deleted_at"`
}

// Admission is the safety gate's decision for one sanitized image.
type Admission struct {
	Status     AdmissionStatus
	Reason     string
	Confidence float64
}
