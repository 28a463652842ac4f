package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/handler/http/response"
	"github.com/presensia/presensi-backend-go/internal/pkg/clock"
	"github.com/presensia/presensi-backend-go/internal/service/gateway"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	RecordManual(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	gateway           gateway.EventGateway
	clk               clock.Clock
}

func NewAttendanceHandler(attendanceService attendance.Service, gw gateway.EventGateway, clk clock.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		gateway:           gw,
		clk:               clk,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if v := r.URL.Query().Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "employee_id must be numeric", nil)
			return
		}
		filter.EmployeeID = &id
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("category"); v != "" {
		filter.Category = &v
	}

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
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

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	record, err := h.attendanceService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Today implements AttendanceHandler. Returns the employee's record for the current
// day, or null when they have not scanned yet.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query().Get("employee_id")
	employeeID, err := strconv.ParseInt(v, 10, 64)
	if err != nil || employeeID < 1 {
		response.BadRequest(w, "employee_id is required and must be numeric", nil)
		return
	}

	record, err := h.attendanceService.GetForDay(r.Context(), employeeID, h.clk.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Update implements AttendanceHandler. Admin corrections for records the engine got
// wrong, for example when a badge was scanned for the wrong person.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	record, err := h.attendanceService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", record)
}

// RecordManual implements AttendanceHandler. Operators use it when a device is down
// and an employee presents at the front desk instead.
func (h *attendanceHandlerImpl) RecordManual(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int64  `json:"employee_id"`
		Timestamp  string `json:"timestamp"`
		DeviceCode string `json:"device_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode manual attendance request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	eventTime := h.clk.Now()
	if req.Timestamp != "" {
		parsed, err := time.ParseInLocation("2006-01-02 15:04:05", req.Timestamp, time.Local)
		if err != nil {
			response.BadRequest(w, "timestamp must use format YYYY-MM-DD HH:MM:SS", nil)
			return
		}
		eventTime = parsed
	}

	outcome := h.gateway.RecordForEmployee(r.Context(), req.EmployeeID, eventTime, req.DeviceCode)
	response.Success(w, outcome)
}
