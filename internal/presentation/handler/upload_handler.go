package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"pixgate/internal/application/usecase/abstraction"
	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/model"
	"pixgate/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
	maxBytes int64
}

func NewUploadHandler(uploader abstraction.Uploader, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		maxBytes: maxBytes,
	}
}

type uploadResponse struct {
	AssetID         string `json:"asset_id"`
	URL             string `json:"url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	AdmissionStatus string `json:"admission_status"`
}

func (h *UploadHandler) Handle(c echo.Context) error {
	traceID := c.Response().Header().Get(echo.HeaderXRequestID)
	principal, _ := c.Get(presentation.KeyPrincipal).(string)

	assetType := model.AssetType(c.FormValue(presentation.AssetTypeField))
	if assetType == "" {
		assetType = model.AssetTypeGeneral
	}
	purpose := model.Purpose(c.FormValue(presentation.PurposeField))
	if purpose == "" {
		purpose = model.PurposeProfile
	}
	if !assetType.Valid() || !purpose.Valid() {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_request",
			Message: fmt.Sprintf("unknown asset type %q or purpose %q", assetType, purpose),
		})
	}

	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_request",
			Message: "multipart field 'file' is required",
		})
	}

	// Ceiling check fires before the body is buffered into memory.
	if fileHeader.Size > h.maxBytes {
		return writeError(c, traceID, entity.ErrTooLarge)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return writeError(c, traceID, err)
	}
	defer src.Close()

	// LimitReader guards against a lying Size header.
	body, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		return writeError(c, traceID, err)
	}
	if int64(len(body)) > h.maxBytes {
		return writeError(c, traceID, entity.ErrTooLarge)
	}

	result, err := h.uploader.Upload(c.Request().Context(), abstraction.UploadInput{
		PrincipalID:    principal,
		OwnerContextID: c.FormValue(presentation.OwnerContextField),
		AssetType:      assetType,
		Purpose:        purpose,
		Raw: entity.RawUpload{
			Bytes:            body,
			DeclaredMimeType: fileHeader.Header.Get(presentation.TypeKey),
			DeclaredFilename: fileHeader.Filename,
			RequestID:        traceID,
		},
	})
	if err != nil {
		return writeError(c, traceID, err)
	}

	return c.JSON(http.StatusOK, uploadResponse{
		AssetID:         result.AssetID,
		URL:             result.URL,
		ThumbnailURL:    result.ThumbnailURL,
		Width:           result.Width,
		Height:          result.Height,
		AdmissionStatus: string(result.Status),
	})
}
