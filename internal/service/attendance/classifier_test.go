package attendance

import (
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 14, hour, minute, 0, 0, time.Local)
}

func TestClassifyCheckIn(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want attendance.CheckInStatus
	}{
		{"well before start", at(6, 30), attendance.CheckInOnTime},
		{"just before eight", at(7, 59), attendance.CheckInOnTime},
		{"eight sharp", at(8, 0), attendance.CheckInOnTime},
		{"end of grace period", at(8, 15), attendance.CheckInOnTime},
		{"one minute past grace", at(8, 16), attendance.CheckInLate},
		{"mid morning", at(9, 30), attendance.CheckInLate},
		{"midnight", at(0, 0), attendance.CheckInOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCheckIn(tt.time))
		})
	}
}

func TestClassifyCheckOut(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want attendance.CheckOutStatus
	}{
		{"mid afternoon", at(15, 0), attendance.CheckOutEarly},
		{"just before five", at(16, 59), attendance.CheckOutEarly},
		{"five sharp", at(17, 0), attendance.CheckOutOnTime},
		{"end of grace period", at(17, 15), attendance.CheckOutOnTime},
		{"one minute past grace", at(17, 16), attendance.CheckOutLate},
		{"evening", at(20, 45), attendance.CheckOutLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCheckOut(tt.time))
		})
	}
}

func TestTooEarlyToCheckOut(t *testing.T) {
	assert.True(t, TooEarlyToCheckOut(at(14, 59)))
	assert.True(t, TooEarlyToCheckOut(at(8, 20)))
	assert.False(t, TooEarlyToCheckOut(at(15, 0)))
	assert.False(t, TooEarlyToCheckOut(at(17, 10)))
}

func TestDeriveCategory(t *testing.T) {
	tests := []struct {
		name string
		in   attendance.CheckInStatus
		out  attendance.CheckOutStatus
		want attendance.Category
	}{
		{"both on time", attendance.CheckInOnTime, attendance.CheckOutOnTime, attendance.CategoryDiscipline},
		{"late in", attendance.CheckInLate, attendance.CheckOutOnTime, attendance.CategoryUndiscipline},
		{"late in late out", attendance.CheckInLate, attendance.CheckOutLate, attendance.CategoryUndiscipline},
		{"early out", attendance.CheckInOnTime, attendance.CheckOutEarly, attendance.CategoryUndiscipline},
		{"late in early out", attendance.CheckInLate, attendance.CheckOutEarly, attendance.CategoryUndiscipline},
		{"on time in late out", attendance.CheckInOnTime, attendance.CheckOutLate, attendance.CategoryOvertime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveCategory(tt.in, tt.out))
		})
	}
}

func TestDeriveCategoryNeverEmpty(t *testing.T) {
	ins := []attendance.CheckInStatus{attendance.CheckInOnTime, attendance.CheckInLate}
	outs := []attendance.CheckOutStatus{attendance.CheckOutEarly, attendance.CheckOutOnTime, attendance.CheckOutLate}

	for _, in := range ins {
		for _, out := range outs {
			assert.NotEmpty(t, DeriveCategory(in, out), "%s/%s", in, out)
		}
	}
}
