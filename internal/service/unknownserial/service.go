package unknownserial

import (
	"context"
	"fmt"
	"math"

	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	repo unknownserial.Repository
}

func NewService(repo unknownserial.Repository) unknownserial.Service {
	return &ServiceImpl{repo: repo}
}

// ListRecords implements unknownserial.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, page, limit int) (unknownserial.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	records, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return unknownserial.ListResponse{}, fmt.Errorf("failed to list unknown serials: %w", err)
	}

	return unknownserial.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Records:    records,
	}, nil
}

// Review implements unknownserial.Service. Accepting a serial marks the row only;
// the admin still registers the employee with that serial separately.
func (s *ServiceImpl) Review(ctx context.Context, req unknownserial.ReviewRequest) error {
	var errs validator.ValidationErrors

	if req.ID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsInSlice(req.Status, []string{
		string(unknownserial.StatusAccepted), string(unknownserial.StatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be accepted or rejected"})
	}
	if len(errs) > 0 {
		return errs
	}

	return s.repo.UpdateStatus(ctx, req.ID, unknownserial.Status(req.Status), req.Note)
}

// DeleteRecord implements unknownserial.Service.
func (s *ServiceImpl) DeleteRecord(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
