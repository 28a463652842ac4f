package employee

import (
	"strings"
	"time"
)

// NormalizeSerial canonicalizes a badge serial to the stored form: upper case, no
// surrounding whitespace. Devices are not consistent about casing, so every lookup
// and every write goes through this.
func NormalizeSerial(serialID string) string {
	return strings.ToUpper(strings.TrimSpace(serialID))
}

// Employee carries the badge serial that scan events resolve against. SerialID is
// unique across the organization.
type Employee struct {
	ID           int64
	SerialID     string
	OfficeID     int64
	DivisionID   *int64
	SupervisorID *int64
	FullName     string
	Position     string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	OfficeName    *string
	OfficeCity    *string
	OfficeAddress *string
	DivisionName  *string
}
