package response

import (
	"errors"
	"net/http"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/domain/auth"
	"github.com/presensia/presensi-backend-go/internal/domain/device"
	"github.com/presensia/presensi-backend-go/internal/domain/division"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/leave"
	"github.com/presensia/presensi-backend-go/internal/domain/office"
	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/domain/user"
	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already recorded for this day")
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Attendance already completed")
	case errors.Is(err, attendance.ErrTooEarlyToCheckOut):
		BadRequest(w, "Too early to check out", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSerialIDExists):
		Conflict(w, "Serial ID already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Device domain errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrDeviceCodeExists):
		Conflict(w, "Device code already registered")

	// Unknown serial review errors
	case errors.Is(err, unknownserial.ErrRecordNotFound):
		NotFound(w, "Unknown serial record not found")

	// Master data errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office not found")
	case errors.Is(err, office.ErrNameExists):
		Conflict(w, "Office name already exists")
	case errors.Is(err, division.ErrDivisionNotFound):
		NotFound(w, "Division not found")
	case errors.Is(err, division.ErrNameExists):
		Conflict(w, "Division name already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Employee already has leave in this period")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
