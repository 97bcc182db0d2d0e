package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/repository/database"
	"pixgate/pkg/logger"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

// writeError maps each kind of the pipeline's closed error taxonomy to a
// stable status and code. Validation-class errors carry a specific message;
// infrastructure-class errors return a generic one, with the detail kept in
// server-side logs keyed by the trace id.
func writeError(c echo.Context, traceID string, err error) error {
	var invalid *entity.InvalidFileError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_file",
			Message: invalid.Error(),
			Reason:  invalid.Reason,
		})
	}

	var rejected *entity.RejectedContentError
	if errors.As(err, &rejected) {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Code:    "rejected_content",
			Message: rejected.Error(),
		})
	}

	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Code: "unauthenticated", Message: entity.ErrUnauthenticated.Error(),
		})
	case errors.Is(err, entity.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{
			Code: "forbidden", Message: entity.ErrForbidden.Error(),
		})
	case errors.Is(err, entity.ErrTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
			Code: "too_large", Message: entity.ErrTooLarge.Error(),
		})
	case errors.Is(err, entity.ErrCorruptImage):
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code: "corrupt_image", Message: entity.ErrCorruptImage.Error(),
		})
	case errors.Is(err, entity.ErrQuotaExceeded):
		return c.JSON(http.StatusForbidden, errorResponse{
			Code: "quota_exceeded", Message: entity.ErrQuotaExceeded.Error(),
		})
	case errors.Is(err, database.ErrAssetNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{
			Code: "not_found", Message: database.ErrAssetNotFound.Error(),
		})
	}

	logger.Error("request failed", "trace_id", traceID, "err", err.Error())

	return c.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "internal",
		Message: "Failed to process the upload. Please try again later.",
	})
}
