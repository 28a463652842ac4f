package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
)

// EngineOptions tune per-deployment behavior of the recording engine.
type EngineOptions struct {
	// EnforceDeviceConsistency rejects a check-out scanned on a different device
	// than the day's check-in.
	EnforceDeviceConsistency bool
}

// EngineImpl records scan events. It holds no attendance state of its own; every
// decision re-reads the store so concurrent scans are serialized by the database.
type EngineImpl struct {
	store attendance.RecordStore
	opts  EngineOptions
}

func NewEngine(store attendance.RecordStore, opts EngineOptions) attendance.Engine {
	return &EngineImpl{store: store, opts: opts}
}

// RecordEvent implements attendance.Engine.
func (e *EngineImpl) RecordEvent(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) attendance.Outcome {
	if employeeID <= 0 {
		return attendance.Rejected("invalid employee id")
	}

	record, err := e.store.FindForDay(ctx, employeeID, eventTime)
	if err != nil {
		slog.Error("failed to look up attendance record", "employee_id", employeeID, "error", err)
		return attendance.Failed("attendance lookup failed")
	}

	if record == nil {
		outcome, retryAsCheckOut := e.checkIn(ctx, employeeID, eventTime, deviceCode)
		if !retryAsCheckOut {
			return outcome
		}
		// A concurrent scan created the record between our read and insert. Re-read
		// once and fall through to the check-out path.
		record, err = e.store.FindForDay(ctx, employeeID, eventTime)
		if err != nil || record == nil {
			slog.Error("failed to re-read attendance record after conflict", "employee_id", employeeID, "error", err)
			return attendance.Failed("attendance lookup failed")
		}
	}

	if record.Completed() {
		return attendance.Rejected(attendance.ReasonAlreadyCompleted)
	}

	return e.checkOut(ctx, record, eventTime, deviceCode)
}

// checkIn inserts the day's record. The second return value asks the caller to retry
// the event as a check-out because another scan won the insert race.
func (e *EngineImpl) checkIn(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) (attendance.Outcome, bool) {
	status := ClassifyCheckIn(eventTime)

	var device *string
	if deviceCode != "" {
		device = &deviceCode
	}

	id, err := e.store.Insert(ctx, employeeID, device, eventTime, status)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateDay) {
			return attendance.Outcome{}, true
		}
		slog.Error("failed to insert attendance record", "employee_id", employeeID, "error", err)
		return attendance.Failed("attendance insert failed"), false
	}

	slog.Info("check-in recorded",
		"employee_id", employeeID,
		"record_id", id,
		"status", string(status))
	return attendance.CheckedIn(id), false
}

func (e *EngineImpl) checkOut(ctx context.Context, record *attendance.Record, eventTime time.Time, deviceCode string) attendance.Outcome {
	if e.opts.EnforceDeviceConsistency &&
		record.DeviceCode != nil && deviceCode != "" && *record.DeviceCode != deviceCode {
		return attendance.Rejected(attendance.ReasonDeviceMismatch)
	}

	if TooEarlyToCheckOut(eventTime) {
		return attendance.Rejected(attendance.ReasonTooEarlyToCheckOut)
	}

	status := ClassifyCheckOut(eventTime)
	category := DeriveCategory(record.StatusCheckIn, status)

	ok, err := e.store.CompleteCheckout(ctx, record.EmployeeID, record.CheckIn, eventTime, status, category)
	if err != nil {
		slog.Error("failed to complete checkout", "employee_id", record.EmployeeID, "error", err)
		return attendance.Failed("attendance update failed")
	}
	if !ok {
		// The open record vanished under us: a concurrent event completed it.
		return attendance.Rejected(attendance.ReasonAlreadyCompleted)
	}

	slog.Info("check-out recorded",
		"employee_id", record.EmployeeID,
		"record_id", record.ID,
		"status", string(status),
		"category", string(category))
	return attendance.CheckedOut(record.ID)
}

// dayString formats the calendar day the way repository queries expect it.
func dayString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}
