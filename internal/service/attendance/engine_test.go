package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory RecordStore keyed by (employee, day). Its mutex gives
// the same atomicity the unique constraint gives the real store.
type fakeStore struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]*attendance.Record

	insertErr error
	findErr   error

	// onCompleteCheckout runs before the write, outside the lock. Lets tests slip a
	// concurrent completion between the engine's read and its checkout.
	onCompleteCheckout func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, records: make(map[string]*attendance.Record)}
}

func (f *fakeStore) keyFor(employeeID int64, day time.Time) string {
	return day.Format("2006-01-02") + ":" + time.Duration(employeeID).String()
}

func (f *fakeStore) FindForDay(ctx context.Context, employeeID int64, day time.Time) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	if r, ok := f.records[f.keyFor(employeeID, day)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStore) Insert(ctx context.Context, employeeID int64, deviceCode *string, checkIn time.Time, status attendance.CheckInStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	k := f.keyFor(employeeID, checkIn)
	if _, ok := f.records[k]; ok {
		return 0, attendance.ErrDuplicateDay
	}
	id := f.nextID
	f.nextID++
	f.records[k] = &attendance.Record{
		ID:            id,
		EmployeeID:    employeeID,
		DeviceCode:    deviceCode,
		CheckIn:       checkIn,
		StatusCheckIn: status,
	}
	return id, nil
}

func (f *fakeStore) CompleteCheckout(ctx context.Context, employeeID int64, day time.Time, checkOut time.Time, status attendance.CheckOutStatus, category attendance.Category) (bool, error) {
	if f.onCompleteCheckout != nil {
		f.onCompleteCheckout()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[f.keyFor(employeeID, day)]
	if !ok || r.CheckOut != nil {
		return false, nil
	}
	r.CheckOut = &checkOut
	r.StatusCheckOut = &status
	r.Category = &category
	return true, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			return *r, nil
		}
	}
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (f *fakeStore) Update(ctx context.Context, record attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, r := range f.records {
		if r.ID == record.ID {
			f.records[k] = &record
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeStore) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) Summary(ctx context.Context) (attendance.SummaryCounts, error) {
	return attendance.SummaryCounts{}, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func TestRecordEvent_FirstScanChecksIn(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	outcome := engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")

	require.Equal(t, attendance.OutcomeCheckedIn, outcome.Kind)
	record, err := store.FindForDay(context.Background(), 42, at(8, 10))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, attendance.CheckInOnTime, record.StatusCheckIn)
	assert.Equal(t, outcome.RecordID, record.ID)
}

func TestRecordEvent_LateFirstScan(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	outcome := engine.RecordEvent(context.Background(), 42, at(8, 20), "D1")

	require.Equal(t, attendance.OutcomeCheckedIn, outcome.Kind)
	record, _ := store.FindForDay(context.Background(), 42, at(8, 20))
	assert.Equal(t, attendance.CheckInLate, record.StatusCheckIn)
}

func TestRecordEvent_SecondScanBeforeThreeIsRejected(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(14, 59), "D1")

	assert.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonTooEarlyToCheckOut, outcome.Reason)

	// Check-in untouched
	record, _ := store.FindForDay(context.Background(), 42, at(8, 10))
	assert.Nil(t, record.CheckOut)
	assert.Equal(t, attendance.CheckInOnTime, record.StatusCheckIn)
}

func TestRecordEvent_OnTimeCheckOutDiscipline(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(17, 10), "D1")

	require.Equal(t, attendance.OutcomeCheckedOut, outcome.Kind)
	record, _ := store.FindForDay(context.Background(), 42, at(17, 10))
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, attendance.CheckOutOnTime, *record.StatusCheckOut)
	assert.Equal(t, attendance.CategoryDiscipline, *record.Category)
}

func TestRecordEvent_LateCheckInEarlyCheckOutUndiscipline(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(8, 20), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(16, 0), "D1")

	require.Equal(t, attendance.OutcomeCheckedOut, outcome.Kind)
	record, _ := store.FindForDay(context.Background(), 42, at(16, 0))
	assert.Equal(t, attendance.CheckOutEarly, *record.StatusCheckOut)
	assert.Equal(t, attendance.CategoryUndiscipline, *record.Category)
}

func TestRecordEvent_OvertimeCategory(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(7, 45), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(18, 30), "D1")

	require.Equal(t, attendance.OutcomeCheckedOut, outcome.Kind)
	record, _ := store.FindForDay(context.Background(), 42, at(18, 30))
	assert.Equal(t, attendance.CheckOutLate, *record.StatusCheckOut)
	assert.Equal(t, attendance.CategoryOvertime, *record.Category)
}

func TestRecordEvent_ThirdScanRejected(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")
	engine.RecordEvent(context.Background(), 42, at(17, 5), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(18, 0), "D1")

	assert.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonAlreadyCompleted, outcome.Reason)

	// Completed record is immutable
	record, _ := store.FindForDay(context.Background(), 42, at(18, 0))
	assert.Equal(t, attendance.CheckOutOnTime, *record.StatusCheckOut)
	assert.Equal(t, at(17, 5), *record.CheckOut)
}

func TestRecordEvent_DeviceMismatchRejectedWhenEnforced(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{EnforceDeviceConsistency: true})

	engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(17, 5), "D2")

	assert.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonDeviceMismatch, outcome.Reason)

	record, _ := store.FindForDay(context.Background(), 42, at(17, 5))
	assert.Nil(t, record.CheckOut)
}

func TestRecordEvent_DeviceMismatchAllowedByDefault(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")
	outcome := engine.RecordEvent(context.Background(), 42, at(17, 5), "D2")

	assert.Equal(t, attendance.OutcomeCheckedOut, outcome.Kind)
}

func TestRecordEvent_InvalidEmployeeID(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	outcome := engine.RecordEvent(context.Background(), 0, at(8, 10), "D1")

	assert.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, 0, store.count())
}

func TestRecordEvent_InsertConflictFallsThroughToCheckOut(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	// Simulate the race: the record appears after the engine's first read. The fake
	// returns ErrDuplicateDay from Insert, so pre-seed via a second engine call path.
	other := NewEngine(store, EngineOptions{})
	other.RecordEvent(context.Background(), 42, at(8, 10), "D1")

	// Force the conflict path directly against the store.
	_, err := store.Insert(context.Background(), 42, nil, at(8, 12), attendance.CheckInOnTime)
	require.ErrorIs(t, err, attendance.ErrDuplicateDay)

	// The engine treats the conflicting scan as a (too early) check-out attempt.
	outcome := engine.RecordEvent(context.Background(), 42, at(8, 12), "D1")
	assert.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonTooEarlyToCheckOut, outcome.Reason)
	assert.Equal(t, 1, store.count())
}

func TestRecordEvent_RacedCheckoutRejected(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})
	require.Equal(t, attendance.OutcomeCheckedIn, engine.RecordEvent(context.Background(), 42, at(8, 10), "D1").Kind)

	// Complete the record between the engine's read and its checkout write, the way
	// a concurrent scan on a second device would.
	store.onCompleteCheckout = func() {
		store.onCompleteCheckout = nil
		ok, err := store.CompleteCheckout(context.Background(), 42, at(17, 5), at(17, 5), attendance.CheckOutOnTime, attendance.CategoryDiscipline)
		require.NoError(t, err)
		require.True(t, ok)
	}

	outcome := engine.RecordEvent(context.Background(), 42, at(17, 10), "D1")

	require.Equal(t, attendance.OutcomeRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonAlreadyCompleted, outcome.Reason)

	record, err := store.FindForDay(context.Background(), 42, at(17, 10))
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, at(17, 5), *record.CheckOut)
}

func TestRecordEvent_ConcurrentFirstScansInsertOnce(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, EngineOptions{})

	const n = 16
	var wg sync.WaitGroup
	outcomes := make([]attendance.Outcome, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = engine.RecordEvent(context.Background(), 42, at(8, 5), "D1")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.count())

	checkedIn := 0
	for _, o := range outcomes {
		if o.Kind == attendance.OutcomeCheckedIn {
			checkedIn++
		} else {
			// Losers observe the freshly-inserted open record and hit the
			// too-early-to-check-out guard; none of them mutate state.
			assert.Equal(t, attendance.OutcomeRejected, o.Kind)
		}
	}
	assert.Equal(t, 1, checkedIn)

	record, _ := store.FindForDay(context.Background(), 42, at(8, 5))
	assert.Nil(t, record.CheckOut)
}

func TestRecordEvent_StoreFailureIsStructured(t *testing.T) {
	store := newFakeStore()
	store.findErr = assert.AnError
	engine := NewEngine(store, EngineOptions{})

	outcome := engine.RecordEvent(context.Background(), 42, at(8, 10), "D1")

	assert.Equal(t, attendance.OutcomeFailed, outcome.Kind)
}
