package dashboard

import (
	"context"
	"fmt"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/leave"
)

// Summary is today's attendance picture. Percentages are proportions of the total
// headcount, rounded to one decimal.
type Summary struct {
	TotalEmployees int64 `json:"total_employees"`

	Present int64 `json:"present"`
	OnTime  int64 `json:"on_time"`
	Late    int64 `json:"late"`
	OnLeave int64 `json:"on_leave"`
	Absent  int64 `json:"absent"`

	PresentPercentage float64 `json:"present_percentage"`
	OnTimePercentage  float64 `json:"on_time_percentage"`
	LatePercentage    float64 `json:"late_percentage"`
	OnLeavePercentage float64 `json:"on_leave_percentage"`
	AbsentPercentage  float64 `json:"absent_percentage"`
}

type DashboardService interface {
	GetSummary(ctx context.Context) (Summary, error)
}

type DashboardServiceImpl struct {
	attendances attendance.RecordStore
	employees   employee.EmployeeRepository
	leaves      leave.LeaveRepository
}

func NewDashboardService(
	attendances attendance.RecordStore,
	employees employee.EmployeeRepository,
	leaves leave.LeaveRepository,
) DashboardService {
	return &DashboardServiceImpl{
		attendances: attendances,
		employees:   employees,
		leaves:      leaves,
	}
}

// GetSummary implements DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	total, err := s.employees.CountAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count employees: %w", err)
	}

	counts, err := s.attendances.Summary(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	onLeave, err := s.leaves.CountOnLeaveToday(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count employees on leave: %w", err)
	}

	absent := total - counts.Present - onLeave
	if absent < 0 {
		absent = 0
	}

	return Summary{
		TotalEmployees: total,

		Present: counts.Present,
		OnTime:  counts.OnTime,
		Late:    counts.Late,
		OnLeave: onLeave,
		Absent:  absent,

		PresentPercentage: percentage(counts.Present, total),
		OnTimePercentage:  percentage(counts.OnTime, total),
		LatePercentage:    percentage(counts.Late, total),
		OnLeavePercentage: percentage(onLeave, total),
		AbsentPercentage:  percentage(absent, total),
	}, nil
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	ratio := float64(part) / float64(total) * 100
	return float64(int64(ratio*10+0.5)) / 10
}
