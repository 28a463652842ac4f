package division

import "time"

type Division struct {
	ID        int64
	OfficeID  int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	OfficeName *string
}
