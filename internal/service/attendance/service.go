package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
)

type ServiceImpl struct {
	store attendance.RecordStore
}

func NewAttendanceService(store attendance.RecordStore) attendance.Service {
	return &ServiceImpl{store: store}
}

// ListRecords implements attendance.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := s.store.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    records,
	}, nil
}

// GetRecord implements attendance.Service.
func (s *ServiceImpl) GetRecord(ctx context.Context, id int64) (attendance.Record, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

// GetForDay implements attendance.Service.
func (s *ServiceImpl) GetForDay(ctx context.Context, employeeID int64, day time.Time) (*attendance.Record, error) {
	record, err := s.store.FindForDay(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for day %s: %w", dayString(day), err)
	}
	return record, nil
}

// UpdateRecord implements attendance.Service. Admin correction path: unlike the
// engine, it may rewrite any field of an existing record.
func (s *ServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	record, err := s.store.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	const layout = "2006-01-02 15:04:05"

	if req.CheckIn != nil && *req.CheckIn != "" {
		t, err := time.Parse(layout, *req.CheckIn)
		if err == nil {
			record.CheckIn = t
		}
	}
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, err := time.Parse(layout, *req.CheckOut)
		if err == nil {
			record.CheckOut = &t
		}
	}
	if req.StatusCheckIn != nil {
		record.StatusCheckIn = attendance.CheckInStatus(*req.StatusCheckIn)
	}
	if req.StatusCheckOut != nil {
		status := attendance.CheckOutStatus(*req.StatusCheckOut)
		record.StatusCheckOut = &status
	}
	if req.Category != nil {
		category := attendance.Category(*req.Category)
		record.Category = &category
	}

	if err := s.store.Update(ctx, record); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := s.store.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get updated attendance record: %w", err)
	}
	return updated, nil
}

// GetSummary implements attendance.Service.
func (s *ServiceImpl) GetSummary(ctx context.Context) (attendance.SummaryCounts, error) {
	counts, err := s.store.Summary(ctx)
	if err != nil {
		return attendance.SummaryCounts{}, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	return counts, nil
}
