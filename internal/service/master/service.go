package master

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/presensia/presensi-backend-go/internal/domain/division"
	"github.com/presensia/presensi-backend-go/internal/domain/office"
)

// OfficeServiceImpl and DivisionServiceImpl live together: offices and divisions are
// the master data the rest of the system hangs off.
type OfficeServiceImpl struct {
	repo office.OfficeRepository
}

func NewOfficeService(repo office.OfficeRepository) office.OfficeService {
	return &OfficeServiceImpl{repo: repo}
}

// CreateOffice implements office.OfficeService.
func (s *OfficeServiceImpl) CreateOffice(ctx context.Context, req office.CreateRequest) (office.Office, error) {
	if err := req.Validate(); err != nil {
		return office.Office{}, err
	}

	return s.repo.Create(ctx, office.Office{
		Name:    strings.TrimSpace(req.Name),
		City:    strings.TrimSpace(req.City),
		Address: strings.TrimSpace(req.Address),
	})
}

// GetOffice implements office.OfficeService.
func (s *OfficeServiceImpl) GetOffice(ctx context.Context, id int64) (office.Office, error) {
	return s.repo.GetByID(ctx, id)
}

// ListOffices implements office.OfficeService.
func (s *OfficeServiceImpl) ListOffices(ctx context.Context, page, limit int) (office.ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	offices, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return office.ListResponse{}, fmt.Errorf("failed to list offices: %w", err)
	}

	return office.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Offices:    offices,
	}, nil
}

// UpdateOffice implements office.OfficeService.
func (s *OfficeServiceImpl) UpdateOffice(ctx context.Context, req office.UpdateRequest) (office.Office, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return office.Office{}, err
	}

	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		current.City = strings.TrimSpace(*req.City)
	}
	if req.Address != nil {
		current.Address = strings.TrimSpace(*req.Address)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return office.Office{}, err
	}

	return s.repo.GetByID(ctx, req.ID)
}

// DeleteOffice implements office.OfficeService.
func (s *OfficeServiceImpl) DeleteOffice(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type DivisionServiceImpl struct {
	repo division.DivisionRepository
}

func NewDivisionService(repo division.DivisionRepository) division.DivisionService {
	return &DivisionServiceImpl{repo: repo}
}

// CreateDivision implements division.DivisionService.
func (s *DivisionServiceImpl) CreateDivision(ctx context.Context, req division.CreateRequest) (division.Division, error) {
	if err := req.Validate(); err != nil {
		return division.Division{}, err
	}

	return s.repo.Create(ctx, division.Division{
		OfficeID: req.OfficeID,
		Name:     strings.TrimSpace(req.Name),
	})
}

// GetDivision implements division.DivisionService.
func (s *DivisionServiceImpl) GetDivision(ctx context.Context, id int64) (division.Division, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDivisions implements division.DivisionService.
func (s *DivisionServiceImpl) ListDivisions(ctx context.Context, filter division.Filter) (division.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	divisions, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return division.ListResponse{}, fmt.Errorf("failed to list divisions: %w", err)
	}

	return division.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Divisions:  divisions,
	}, nil
}

// UpdateDivision implements division.DivisionService.
func (s *DivisionServiceImpl) UpdateDivision(ctx context.Context, req division.UpdateRequest) (division.Division, error) {
	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return division.Division{}, err
	}

	if req.OfficeID != nil {
		current.OfficeID = *req.OfficeID
	}
	if req.Name != nil {
		current.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return division.Division{}, err
	}

	return s.repo.GetByID(ctx, req.ID)
}

// DeleteDivision implements division.DivisionService.
func (s *DivisionServiceImpl) DeleteDivision(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
