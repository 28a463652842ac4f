package device

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/presensia/presensi-backend-go/internal/domain/device"
)

type DeviceServiceImpl struct {
	repo device.DeviceRepository
}

func NewDeviceService(repo device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{repo: repo}
}

// CreateDevice implements device.DeviceService.
func (s *DeviceServiceImpl) CreateDevice(ctx context.Context, req device.CreateRequest) (device.Device, error) {
	if err := req.Validate(); err != nil {
		return device.Device{}, err
	}

	return s.repo.Create(ctx, device.Device{
		DeviceCode: strings.ToUpper(strings.TrimSpace(req.DeviceCode)),
		DeviceName: strings.TrimSpace(req.DeviceName),
		Status:     device.Status(req.Status),
		Location:   strings.TrimSpace(req.Location),
	})
}

// GetDevice implements device.DeviceService.
func (s *DeviceServiceImpl) GetDevice(ctx context.Context, id int64) (device.Device, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDevices implements device.DeviceService.
func (s *DeviceServiceImpl) ListDevices(ctx context.Context, filter device.Filter) (device.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	devices, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return device.ListResponse{}, fmt.Errorf("failed to list devices: %w", err)
	}

	return device.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Devices:    devices,
	}, nil
}

// UpdateDevice implements device.DeviceService.
func (s *DeviceServiceImpl) UpdateDevice(ctx context.Context, req device.UpdateRequest) (device.Device, error) {
	if err := req.Validate(); err != nil {
		return device.Device{}, err
	}

	current, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return device.Device{}, err
	}

	if req.DeviceName != nil {
		current.DeviceName = strings.TrimSpace(*req.DeviceName)
	}
	if req.Status != nil {
		current.Status = device.Status(*req.Status)
	}
	if req.Location != nil {
		current.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return device.Device{}, err
	}

	return s.repo.GetByID(ctx, req.ID)
}

// DeleteDevice implements device.DeviceService.
func (s *DeviceServiceImpl) DeleteDevice(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
