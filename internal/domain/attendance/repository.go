package attendance

import (
	"context"
	"time"
)

// RecordStore defines data access for attendance records. All state lives here; the
// engine keeps no attendance rows in memory, so correctness only needs the store to
// turn a duplicate (employee, day) insert into ErrDuplicateDay atomically.
type RecordStore interface {
	// FindForDay returns the record whose check-in falls on the given calendar day,
	// or nil when the employee has not scanned yet.
	FindForDay(ctx context.Context, employeeID int64, day time.Time) (*Record, error)

	// Insert creates the day's record with the check-in already classified.
	// Returns ErrDuplicateDay when a record for (employeeID, day of checkIn) exists.
	Insert(ctx context.Context, employeeID int64, deviceCode *string, checkIn time.Time, status CheckInStatus) (int64, error)

	// CompleteCheckout writes check-out, its status and the derived category onto the
	// day's still-open record. Returns false when no open record matched, which means
	// a concurrent event completed it first.
	CompleteCheckout(ctx context.Context, employeeID int64, day time.Time, checkOut time.Time, status CheckOutStatus, category Category) (bool, error)

	// GetByID retrieves a single record.
	GetByID(ctx context.Context, id int64) (Record, error)

	// Update applies admin corrections to an existing record.
	Update(ctx context.Context, record Record) error

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// Summary returns classification counts for the dashboard.
	Summary(ctx context.Context) (SummaryCounts, error)
}

// Engine records scan events against the store.
type Engine interface {
	// RecordEvent decides whether the event is the day's check-in or check-out,
	// classifies it and persists the result. It never returns partial state: either
	// the store mutation happened and the outcome says so, or nothing changed.
	RecordEvent(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) Outcome
}

// Service exposes the reporting and admin operations built on top of the store.
type Service interface {
	ListRecords(ctx context.Context, filter Filter) (ListResponse, error)
	GetRecord(ctx context.Context, id int64) (Record, error)
	GetForDay(ctx context.Context, employeeID int64, day time.Time) (*Record, error)
	UpdateRecord(ctx context.Context, req UpdateRequest) (Record, error)
	GetSummary(ctx context.Context) (SummaryCounts, error)
}
