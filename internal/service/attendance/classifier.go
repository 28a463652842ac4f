package attendance

import (
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
)

// Work-day boundaries, local wall clock. Check-in closes at 08:15, check-out opens
// at 15:00 and is on time until 17:15.
const (
	checkInOnTimeHour    = 8
	checkInGraceMinutes  = 15
	earliestCheckOutHour = 15
	checkOutHour         = 17
	checkOutGraceMinutes = 15
)

// ClassifyCheckIn maps a scan timestamp to the check-in status. Pure; uses the
// local hour/minute fields of t as supplied by the caller.
func ClassifyCheckIn(t time.Time) attendance.CheckInStatus {
	if t.Hour() < checkInOnTimeHour || (t.Hour() == checkInOnTimeHour && t.Minute() <= checkInGraceMinutes) {
		return attendance.CheckInOnTime
	}
	return attendance.CheckInLate
}

// ClassifyCheckOut maps a scan timestamp to the check-out status. Callers must
// already have rejected timestamps before 15:00; this function only distinguishes
// early/on_time/late around the 17:00-17:15 boundary.
func ClassifyCheckOut(t time.Time) attendance.CheckOutStatus {
	if t.Hour() < checkOutHour {
		return attendance.CheckOutEarly
	}
	if t.Hour() == checkOutHour && t.Minute() <= checkOutGraceMinutes {
		return attendance.CheckOutOnTime
	}
	return attendance.CheckOutLate
}

// TooEarlyToCheckOut reports whether a second scan is before the earliest allowed
// check-out. This 15:00 threshold is independent of the on-time boundary.
func TooEarlyToCheckOut(t time.Time) bool {
	return t.Hour() < earliestCheckOutHour
}

// DeriveCategory combines both statuses into the discipline category. Pairs the
// rules don't cover map to unclassified rather than an empty value.
func DeriveCategory(in attendance.CheckInStatus, out attendance.CheckOutStatus) attendance.Category {
	switch {
	case in == attendance.CheckInOnTime && out == attendance.CheckOutOnTime:
		return attendance.CategoryDiscipline
	case in == attendance.CheckInLate || out == attendance.CheckOutEarly:
		return attendance.CategoryUndiscipline
	case in == attendance.CheckInOnTime && out == attendance.CheckOutLate:
		return attendance.CategoryOvertime
	default:
		return attendance.CategoryUnclassified
	}
}
