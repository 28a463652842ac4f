package unknownserial

import "context"

// PendingRegistry is the narrow surface the event gateway uses to register unresolved
// badge serials idempotently.
type PendingRegistry interface {
	// FindPending returns the pending row for a serial, nil when none exists.
	FindPending(ctx context.Context, serialID string) (*Record, error)

	// CreatePending inserts a pending row for the serial.
	CreatePending(ctx context.Context, serialID string, note *string) (int64, error)
}

// Repository defines data access for unknown serial records.
type Repository interface {
	PendingRegistry

	List(ctx context.Context, page, limit int) ([]Record, int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status, note *string) error
	Delete(ctx context.Context, id int64) error
}

// Service defines review operations over the queue of unknown serials.
type Service interface {
	ListRecords(ctx context.Context, page, limit int) (ListResponse, error)
	Review(ctx context.Context, req ReviewRequest) error
	DeleteRecord(ctx context.Context, id int64) error
}

type ListResponse struct {
	TotalCount int64
	Page       int
	Limit      int
	TotalPages int
	Records    []Record
}

type ReviewRequest struct {
	ID     int64   `json:"-"`
	Status string  `json:"status"`
	Note   *string `json:"note"`
}
