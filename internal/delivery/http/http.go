package http

import (
	"context"
	"signal-relay/internal/service"
	"signal-relay/pkg/logger"

	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo    *echo.Echo
	log     *logger.Logger
	service *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, log *logger.Logger, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:    echo,
		log:     log,
		service: service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("")
	h.SetupSignal(base)
}
