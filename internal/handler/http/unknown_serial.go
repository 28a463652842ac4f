package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/handler/http/response"
)

// UnknownSerialHandler exposes the review queue of badge serials that scanned
// without a matching employee.
type UnknownSerialHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type unknownSerialHandlerImpl struct {
	service unknownserial.Service
}

func NewUnknownSerialHandler(service unknownserial.Service) UnknownSerialHandler {
	return &unknownSerialHandlerImpl{service: service}
}

// List implements UnknownSerialHandler.
func (h *unknownSerialHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRecords(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Review implements UnknownSerialHandler.
func (h *unknownSerialHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req unknownserial.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode review request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.service.Review(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Serial reviewed", nil)
}

// Delete implements UnknownSerialHandler.
func (h *unknownSerialHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	if err := h.service.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}
