package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/leave"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	repo      leave.LeaveRepository
	directory employee.Directory
}

func NewLeaveService(repo leave.LeaveRepository, directory employee.Directory) leave.LeaveService {
	return &LeaveServiceImpl{repo: repo, directory: directory}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	exists, err := s.directory.Exists(ctx, req.EmployeeID)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to verify employee: %w", err)
	}
	if !exists {
		return leave.Leave{}, employee.ErrEmployeeNotFound
	}

	startDate, err := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.ParseInLocation(dateLayout, req.EndDate, time.Local)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	overlaps, err := s.repo.ExistsInRange(ctx, req.EmployeeID, startDate, endDate)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlaps {
		return leave.Leave{}, leave.ErrOverlappingLeave
	}

	return s.repo.Create(ctx, leave.Leave{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  leave.Type(req.LeaveType),
		Reason:     req.Reason,
	})
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id int64) (leave.Leave, error) {
	return s.repo.GetByID(ctx, id)
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, page, limit int) (leave.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	leaves, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leaves: %w", err)
	}

	return leave.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Leaves:     leaves,
	}, nil
}

// DeleteLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, leave.ErrLeaveNotFound) {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	return err
}
