package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixgate/internal/application/usecase/abstraction"
	"pixgate/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{getter: getter}
}

func (h *GetHandler) Handle(c echo.Context) error {
	traceID := c.Response().Header().Get(echo.HeaderXRequestID)
	principal, _ := c.Get(presentation.KeyPrincipal).(string)

	descriptor, err := h.getter.GetAsset(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return writeError(c, traceID, err)
	}

	return c.JSON(http.StatusOK, descriptor)
}
