package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pixgate/internal/application/usecase/abstraction"
	"pixgate/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{lister: lister}
}

func (h *ListHandler) Handle(c echo.Context) error {
	traceID := c.Response().Header().Get(echo.HeaderXRequestID)
	principal, _ := c.Get(presentation.KeyPrincipal).(string)

	since, err := parseUnixParam(c.QueryParam("since"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_request",
			Message: "'since' must be a unix timestamp in seconds",
		})
	}
	until, err := parseUnixParam(c.QueryParam("until"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "invalid_request",
			Message: "'until' must be a unix timestamp in seconds",
		})
	}

	descriptors, err := h.lister.ListAssets(c.Request().Context(), principal, since, until)
	if err != nil {
		return writeError(c, traceID, err)
	}

	return c.JSON(http.StatusOK, descriptors)
}

func parseUnixParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	t := time.Unix(seconds, 0).UTC()

	return &t, nil
}
