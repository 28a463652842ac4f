package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/presensia/presensi-backend-go/internal/domain/division"
	"github.com/presensia/presensi-backend-go/internal/domain/office"
	"github.com/presensia/presensi-backend-go/internal/handler/http/response"
)

// MasterHandler covers offices and divisions, the master data employees reference.
type MasterHandler interface {
	CreateOffice(w http.ResponseWriter, r *http.Request)
	GetOffice(w http.ResponseWriter, r *http.Request)
	ListOffices(w http.ResponseWriter, r *http.Request)
	UpdateOffice(w http.ResponseWriter, r *http.Request)
	DeleteOffice(w http.ResponseWriter, r *http.Request)

	CreateDivision(w http.ResponseWriter, r *http.Request)
	GetDivision(w http.ResponseWriter, r *http.Request)
	ListDivisions(w http.ResponseWriter, r *http.Request)
	UpdateDivision(w http.ResponseWriter, r *http.Request)
	DeleteDivision(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	officeService   office.OfficeService
	divisionService division.DivisionService
}

func NewMasterHandler(officeService office.OfficeService, divisionService division.DivisionService) MasterHandler {
	return &masterHandlerImpl{
		officeService:   officeService,
		divisionService: divisionService,
	}
}

// CreateOffice implements MasterHandler.
func (h *masterHandlerImpl) CreateOffice(w http.ResponseWriter, r *http.Request) {
	var req office.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode office request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.officeService.CreateOffice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office created", created)
}

// GetOffice implements MasterHandler.
func (h *masterHandlerImpl) GetOffice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid office id", nil)
		return
	}

	o, err := h.officeService.GetOffice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, o)
}

// ListOffices implements MasterHandler.
func (h *masterHandlerImpl) ListOffices(w http.ResponseWriter, r *http.Request) {
	result, err := h.officeService.ListOffices(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Offices, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// UpdateOffice implements MasterHandler.
func (h *masterHandlerImpl) UpdateOffice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid office id", nil)
		return
	}

	var req office.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode office update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.officeService.UpdateOffice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated", updated)
}

// DeleteOffice implements MasterHandler.
func (h *masterHandlerImpl) DeleteOffice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid office id", nil)
		return
	}

	if err := h.officeService.DeleteOffice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office deleted", nil)
}

// CreateDivision implements MasterHandler.
func (h *masterHandlerImpl) CreateDivision(w http.ResponseWriter, r *http.Request) {
	var req division.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode division request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.divisionService.CreateDivision(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Division created", created)
}

// GetDivision implements MasterHandler.
func (h *masterHandlerImpl) GetDivision(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid division id", nil)
		return
	}

	d, err := h.divisionService.GetDivision(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, d)
}

// ListDivisions implements MasterHandler.
func (h *masterHandlerImpl) ListDivisions(w http.ResponseWriter, r *http.Request) {
	filter := division.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("office_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "office_id must be numeric", nil)
			return
		}
		filter.OfficeID = &id
	}
	if v := r.URL.Query().Get("key"); v != "" {
		filter.Key = &v
	}

	result, err := h.divisionService.ListDivisions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Divisions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// UpdateDivision implements MasterHandler.
func (h *masterHandlerImpl) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid division id", nil)
		return
	}

	var req division.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode division update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.divisionService.UpdateDivision(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division updated", updated)
}

// DeleteDivision implements MasterHandler.
func (h *masterHandlerImpl) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid division id", nil)
		return
	}

	if err := h.divisionService.DeleteDivision(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division deleted", nil)
}
