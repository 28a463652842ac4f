package leave

import (
	"context"
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves []leave.Leave
	nextID int64
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	f.nextID++
	l.ID = f.nextID
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	for _, l := range f.leaves {
		if l.ID == id {
			return l, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, page, limit int) ([]leave.Leave, int64, error) {
	return f.leaves, int64(len(f.leaves)), nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id int64) error {
	for i, l := range f.leaves {
		if l.ID == id {
			f.leaves = append(f.leaves[:i], f.leaves[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ExistsInRange(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID && !l.StartDate.After(end) && !l.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) CountOnLeaveToday(ctx context.Context) (int64, error) {
	return 0, nil
}

type staticDirectory struct {
	known map[int64]bool
}

func (d *staticDirectory) FindBySerialID(ctx context.Context, serialID string) (*employee.Employee, error) {
	return nil, nil
}

func (d *staticDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	return d.known[id], nil
}

func newLeaveFixture() (*fakeLeaveRepo, leave.LeaveService) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, &staticDirectory{known: map[int64]bool{7: true}})
	return repo, svc
}

func createReq(start, end string) leave.CreateRequest {
	return leave.CreateRequest{
		EmployeeID: 7,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  "annual",
		Reason:     "family visit",
	}
}

func TestCreateLeave_Succeeds(t *testing.T) {
	repo, svc := newLeaveFixture()

	created, err := svc.CreateLeave(context.Background(), createReq("2025-04-10", "2025-04-12"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.EmployeeID)
	assert.Len(t, repo.leaves, 1)
}

func TestCreateLeave_UnknownEmployeeRejected(t *testing.T) {
	_, svc := newLeaveFixture()

	req := createReq("2025-04-10", "2025-04-12")
	req.EmployeeID = 99

	_, err := svc.CreateLeave(context.Background(), req)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateLeave_OverlapRejected(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"same range", "2025-04-10", "2025-04-12"},
		{"starts inside existing", "2025-04-11", "2025-04-15"},
		{"ends inside existing", "2025-04-05", "2025-04-10"},
		{"strictly contains existing", "2025-04-05", "2025-04-20"},
		{"contained by existing", "2025-04-11", "2025-04-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newLeaveFixture()
			_, err := svc.CreateLeave(context.Background(), createReq("2025-04-10", "2025-04-12"))
			require.NoError(t, err)

			_, err = svc.CreateLeave(context.Background(), createReq(tt.start, tt.end))

			assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
			assert.Len(t, repo.leaves, 1)
		})
	}
}

func TestCreateLeave_AdjacentRangesAllowed(t *testing.T) {
	repo, svc := newLeaveFixture()
	_, err := svc.CreateLeave(context.Background(), createReq("2025-04-10", "2025-04-12"))
	require.NoError(t, err)

	_, err = svc.CreateLeave(context.Background(), createReq("2025-04-13", "2025-04-14"))

	require.NoError(t, err)
	assert.Len(t, repo.leaves, 2)
}
