package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/pkg/database"
	"github.com/presensia/presensi-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// testDatabase connects once per test binary. Tests are skipped entirely when
// TEST_DATABASE_URL is unset so the pure-logic suites run without infrastructure.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}

	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE attendances CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE offices CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, db *database.DB, serialID string) int64 {
	t.Helper()
	ctx := context.Background()

	var officeID int64
	err := db.QueryRow(ctx,
		"INSERT INTO offices (office_name, city, address) VALUES ('HQ', 'Jakarta', 'Jl. Sudirman 1') RETURNING id",
	).Scan(&officeID)
	require.NoError(t, err)

	repo := postgresql.NewEmployeeRepository(db)
	emp, err := repo.Create(ctx, employee.Employee{
		SerialID: serialID,
		OfficeID: officeID,
		FullName: "Budi Santoso",
		Position: "Engineer",
		Email:    serialID + "@example.com",
		Phone:    "081234567890",
	})
	require.NoError(t, err)

	return emp.ID
}

func TestAttendanceRepository_InsertDuplicateDay(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, db, "AB12CD34")

	checkIn := time.Date(2025, 3, 14, 8, 10, 0, 0, time.Local)

	id, err := repo.Insert(ctx, empID, nil, checkIn, attendance.CheckInOnTime)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	// Same employee, same day: the unique index must reject the second row.
	_, err = repo.Insert(ctx, empID, nil, checkIn.Add(10*time.Minute), attendance.CheckInOnTime)
	assert.ErrorIs(t, err, attendance.ErrDuplicateDay)

	// A different day is fine.
	_, err = repo.Insert(ctx, empID, nil, checkIn.AddDate(0, 0, 1), attendance.CheckInOnTime)
	assert.NoError(t, err)
}

func TestAttendanceRepository_FindForDay(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, db, "AB12CD34")

	checkIn := time.Date(2025, 3, 14, 8, 10, 0, 0, time.Local)

	rec, err := repo.FindForDay(ctx, empID, checkIn)
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = repo.Insert(ctx, empID, nil, checkIn, attendance.CheckInOnTime)
	require.NoError(t, err)

	rec, err = repo.FindForDay(ctx, empID, checkIn.Add(9*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, empID, rec.EmployeeID)
	assert.Equal(t, attendance.CheckInOnTime, rec.StatusCheckIn)
	assert.Nil(t, rec.CheckOut)
}

func TestAttendanceRepository_CompleteCheckout(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	empID := createTestEmployee(t, db, "AB12CD34")

	checkIn := time.Date(2025, 3, 14, 8, 10, 0, 0, time.Local)
	checkOut := time.Date(2025, 3, 14, 17, 5, 0, 0, time.Local)

	_, err := repo.Insert(ctx, empID, nil, checkIn, attendance.CheckInOnTime)
	require.NoError(t, err)

	ok, err := repo.CompleteCheckout(ctx, empID, checkOut, checkOut, attendance.CheckOutOnTime, attendance.CategoryDiscipline)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second completion matches nothing: check_out is no longer NULL.
	ok, err = repo.CompleteCheckout(ctx, empID, checkOut, checkOut.Add(time.Hour), attendance.CheckOutLate, attendance.CategoryOvertime)
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := repo.FindForDay(ctx, empID, checkIn)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Category)
	assert.Equal(t, attendance.CategoryDiscipline, *rec.Category)
}

func TestUnknownSerialRepository_PendingIdempotent(t *testing.T) {
	db := testDatabase(t)

	ctx := context.Background()
	_, err := db.Exec(ctx, "TRUNCATE TABLE unknown_serial_ids CASCADE")
	require.NoError(t, err)

	repo := postgresql.NewUnknownSerialRepository(db)

	rec, err := repo.FindPending(ctx, "ZZ99ZZ99")
	require.NoError(t, err)
	assert.Nil(t, rec)

	id, err := repo.CreatePending(ctx, "ZZ99ZZ99", nil)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	rec, err = repo.FindPending(ctx, "ZZ99ZZ99")
	require.NoError(t, err)
	require.NotNil(t, rec)

	// Losing the insert race is swallowed, not surfaced.
	_, err = repo.CreatePending(ctx, "ZZ99ZZ99", nil)
	assert.NoError(t, err)
}
