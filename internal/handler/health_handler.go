package handler

import (
	"net/http"
	"time"

	"github.com/kaminoclone/cobranca/internal/eventbus"
	"github.com/labstack/echo/v4"
)

type BusStats interface {
	Stats() eventbus.Stats
}

type HealthHandler struct {
	storage string
	bus     BusStats
}

// NewHealthHandler reports the storage driver and the audit bus counters.
func NewHealthHandler(storage string, bus BusStats) *HealthHandler {
	return &HealthHandler{storage: storage, bus: bus}
}

func (h *HealthHandler) Check(c echo.Context) error {
	body := map[string]interface{}{
		"status":    "ok",
		"storage":   h.storage,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.bus != nil {
		body["audit_bus"] = h.bus.Stats()
	}
	return c.JSON(http.StatusOK, body)
}
