package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/domain/device"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/pkg/clock"
	"github.com/presensia/presensi-backend-go/internal/pkg/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevices struct {
	byCode map[string]*device.Device
	err    error
}

func (f *fakeDevices) FindByCode(ctx context.Context, code string) (*device.Device, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byCode[code], nil
}

type fakeDirectory struct {
	bySerial map[string]*employee.Employee
	existing map[int64]bool
	err      error
}

func (f *fakeDirectory) FindBySerialID(ctx context.Context, serialID string) (*employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySerial[serialID], nil
}

func (f *fakeDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[id], nil
}

type fakePending struct {
	pending map[string]*unknownserial.Record
	created []string
}

func (f *fakePending) FindPending(ctx context.Context, serialID string) (*unknownserial.Record, error) {
	return f.pending[serialID], nil
}

func (f *fakePending) CreatePending(ctx context.Context, serialID string, note *string) (int64, error) {
	f.created = append(f.created, serialID)
	id := int64(len(f.created))
	f.pending[serialID] = &unknownserial.Record{ID: id, SerialID: serialID, Status: unknownserial.StatusPending}
	return id, nil
}

type fakeEngine struct {
	outcome attendance.Outcome
	calls   []int64
}

func (f *fakeEngine) RecordEvent(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) attendance.Outcome {
	f.calls = append(f.calls, employeeID)
	return f.outcome
}

type fakeNotifier struct {
	acks []relay.Ack
}

func (f *fakeNotifier) NotifyOutcome(ctx context.Context, ack relay.Ack) error {
	f.acks = append(f.acks, ack)
	return nil
}

type fixture struct {
	devices   *fakeDevices
	directory *fakeDirectory
	pending   *fakePending
	engine    *fakeEngine
	notifier  *fakeNotifier
	gateway   EventGateway
}

func newFixture() *fixture {
	f := &fixture{
		devices: &fakeDevices{byCode: map[string]*device.Device{
			"DEV-1": {ID: 1, DeviceCode: "DEV-1", Status: device.StatusActive},
			"DEV-9": {ID: 9, DeviceCode: "DEV-9", Status: device.StatusInactive},
		}},
		directory: &fakeDirectory{
			bySerial: map[string]*employee.Employee{
				"AB12CD34": {ID: 42, SerialID: "AB12CD34", FullName: "Budi Santoso"},
			},
			existing: map[int64]bool{42: true},
		},
		pending:  &fakePending{pending: map[string]*unknownserial.Record{}},
		engine:   &fakeEngine{outcome: attendance.CheckedIn(7)},
		notifier: &fakeNotifier{},
	}
	f.gateway = NewGateway(f.devices, f.directory, f.pending, f.engine, f.notifier,
		clock.Fixed(time.Date(2025, 3, 14, 8, 0, 0, 0, time.Local)))
	return f
}

func TestHandleScan_ResolvedSerialDelegatesToEngine(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.HandleScan(context.Background(), "AB12CD34", time.Now(), "DEV-1")

	assert.Equal(t, attendance.OutcomeCheckedIn, outcome.Kind)
	assert.Equal(t, []int64{42}, f.engine.calls)
}

func TestHandleScan_LowercaseSerialResolvesToStoredForm(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.HandleScan(context.Background(), " ab12cd34 ", time.Now(), "DEV-1")

	assert.Equal(t, attendance.OutcomeCheckedIn, outcome.Kind)
	assert.Equal(t, []int64{42}, f.engine.calls)
	assert.Empty(t, f.pending.created, "a casing variant of a registered serial must not enter the review queue")
	require.Len(t, f.notifier.acks, 1)
	assert.Equal(t, "AB12CD34", f.notifier.acks[0].SerialID)
}

func TestHandleScan_UnknownDeviceRejected(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.HandleScan(context.Background(), "AB12CD34", time.Now(), "GHOST")

	assert.Equal(t, attendance.OutcomeDeviceRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonDeviceNotFound, outcome.Reason)
	assert.Empty(t, f.engine.calls)
}

func TestHandleScan_InactiveDeviceRejected(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.HandleScan(context.Background(), "AB12CD34", time.Now(), "DEV-9")

	assert.Equal(t, attendance.OutcomeDeviceRejected, outcome.Kind)
	assert.Equal(t, attendance.ReasonDeviceInactive, outcome.Reason)
	assert.Empty(t, f.engine.calls)
}

func TestHandleScan_UnknownSerialRegisteredOnce(t *testing.T) {
	f := newFixture()

	first := f.gateway.HandleScan(context.Background(), "ZZ99ZZ99", time.Now(), "DEV-1")
	second := f.gateway.HandleScan(context.Background(), "ZZ99ZZ99", time.Now(), "DEV-1")

	assert.Equal(t, attendance.OutcomeUnknownSerial, first.Kind)
	assert.Equal(t, attendance.OutcomeUnknownSerial, second.Kind)
	assert.Equal(t, []string{"ZZ99ZZ99"}, f.pending.created)
	assert.Empty(t, f.engine.calls)
}

func TestHandleScan_AcknowledgesOutcome(t *testing.T) {
	f := newFixture()
	f.engine.outcome = attendance.Rejected(attendance.ReasonTooEarlyToCheckOut)

	f.gateway.HandleScan(context.Background(), "AB12CD34", time.Now(), "DEV-1")

	require.Len(t, f.notifier.acks, 1)
	ack := f.notifier.acks[0]
	assert.Equal(t, "AB12CD34", ack.SerialID)
	assert.Equal(t, string(attendance.OutcomeRejected), ack.Kind)
	assert.Equal(t, attendance.ReasonTooEarlyToCheckOut, ack.Reason)
	assert.Equal(t, "2025-03-14 08:00:00", ack.SentAt)
}

func TestHandleScan_DirectoryFailureIsStructured(t *testing.T) {
	f := newFixture()
	f.directory.err = assert.AnError

	outcome := f.gateway.HandleScan(context.Background(), "AB12CD34", time.Now(), "DEV-1")

	assert.Equal(t, attendance.OutcomeFailed, outcome.Kind)
	assert.Empty(t, f.engine.calls)
}

func TestRecordForEmployee_UnknownEmployee(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.RecordForEmployee(context.Background(), 999, time.Now(), "")

	assert.Equal(t, attendance.OutcomeEmployeeNotFound, outcome.Kind)
	assert.Empty(t, f.engine.calls)
}

func TestRecordForEmployee_KnownEmployee(t *testing.T) {
	f := newFixture()

	outcome := f.gateway.RecordForEmployee(context.Background(), 42, time.Now(), "")

	assert.Equal(t, attendance.OutcomeCheckedIn, outcome.Kind)
	assert.Equal(t, []int64{42}, f.engine.calls)
}
