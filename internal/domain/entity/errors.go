package entity

import (
	"errors"
	"fmt"
)

// The closed error taxonomy of the ingestion pipeline. Every stage failure is
// one of these kinds, wrapped with the request trace id before it crosses a
// component boundary.
var (
	ErrUnauthenticated       = errors.New("caller identity is missing or invalid")
	ErrForbidden             = errors.New("caller is not permitted to perform this upload")
	ErrTooLarge              = errors.New("file exceeds the size ceiling")
	ErrInvalidFile           = errors.New("file failed structural validation")
	ErrCorruptImage          = errors.New("file passed signature check but failed to decode")
	ErrClassifierUnavailable = errors.New("content classifier is unavailable")
	ErrRejectedContent       = errors.New("content violates policy")
	ErrQuotaExceeded         = errors.New("owner storage quota exceeded")
	ErrStorageFailure        = errors.New("object storage write failed")
	ErrPersistenceFailure    = errors.New("metadata record write failed")
)

// Machine-readable sub-reasons carried by InvalidFileError.
const (
	ReasonUnsupportedFormat  = "unsupported_format"
	ReasonTypeMismatch       = "type_mismatch"
	ReasonFormatTooLarge     = "format_too_large"
	ReasonDimensionsTooBig   = "dimensions_too_big"
	ReasonDimensionsTooSmall = "dimensions_too_small"
	ReasonEmptyFile          = "empty_file"
)

// InvalidFileError is an ErrInvalidFile with a machine-readable reason code.
type InvalidFileError struct {
	Reason string
	Detail string
}

func (e *InvalidFileError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidFile.Error(), e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", ErrInvalidFile.Error(), e.Reason, e.Detail)
}

func (e *InvalidFileError) Unwrap() error {
	return ErrInvalidFile
}

// RejectedContentError is an ErrRejectedContent carrying the gate's reason and
// confidence for the caller-facing message and the audit log.
type RejectedContentError struct {
	Reason     string
	Confidence float64
}

func (e *RejectedContentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejectedContent.Error(), e.Reason)
}

func (e *RejectedContentError) Unwrap() error {
	return ErrRejectedContent
}
