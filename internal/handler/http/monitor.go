package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/presensia/presensi-backend-go/internal/handler/http/response"
	"github.com/presensia/presensi-backend-go/internal/pkg/clock"
	"github.com/presensia/presensi-backend-go/internal/service/gateway"
)

// MonitorHandler receives the oneM2M broker's subscription notifications. The
// endpoint is unauthenticated: the broker cannot carry JWTs, and every scan already
// resolves to a structured outcome rather than an error the broker would retry.
type MonitorHandler interface {
	PostMonitor(w http.ResponseWriter, r *http.Request)
	GetMonitor(w http.ResponseWriter, r *http.Request)
}

type monitorHandlerImpl struct {
	gateway gateway.EventGateway
	clk     clock.Clock
}

func NewMonitorHandler(gw gateway.EventGateway, clk clock.Clock) MonitorHandler {
	return &monitorHandlerImpl{gateway: gw, clk: clk}
}

// PostMonitor implements MonitorHandler.
func (h *monitorHandlerImpl) PostMonitor(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		response.BadRequest(w, "Failed to read notification body", nil)
		return
	}

	payload, err := gateway.DecodeEnvelope(body)
	if err != nil {
		slog.Error("Failed to decode broker notification", "error", err)
		response.BadRequest(w, "Invalid notification structure", nil)
		return
	}

	eventTime, err := payload.EventTime(h.clk.Now())
	if err != nil {
		slog.Error("Failed to parse scan timestamp", "error", err)
		response.BadRequest(w, "Invalid scan timestamp", nil)
		return
	}

	outcome := h.gateway.HandleScan(r.Context(), payload.SerialID, eventTime, payload.DeviceCode)
	response.Success(w, outcome)
}

// GetMonitor implements MonitorHandler. Brokers probe subscriptions with a GET
// before delivering notifications.
func (h *monitorHandlerImpl) GetMonitor(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Monitor endpoint ready", nil)
}
