package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages master data and reviews
	RoleOperator Role = "operator" // Read access to reports and monitoring
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has full privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
