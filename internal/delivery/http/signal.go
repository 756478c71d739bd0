package http

import (
	"io"
	"net/http"
	"signal-relay/pkg/common"
	"signal-relay/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSignal(base *echo.Group) {
	base.POST(common.SIGNAL_PATH, h.handleSignal)
}

// handleSignal answers 500 for every failure, malformed bodies included. The
// cause is only logged.
func (h *HttpAPIHandler) handleSignal(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to read signal body", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, common.MSG_SIGNAL_FAILED)
	}

	h.log.InfoContext(ctx, "Received signal", logger.StringField(common.KEY_LOG_PAYLOAD, string(body)))

	if err := h.service.SignalService.Relay(ctx, body); err != nil {
		h.log.ErrorContext(ctx, "Error publishing signal", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, common.MSG_SIGNAL_FAILED)
	}

	return c.String(http.StatusOK, common.MSG_SIGNAL_PUBLISHED)
}
