package office

import "time"

type Office struct {
	ID        int64
	Name      string
	City      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
