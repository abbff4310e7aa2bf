package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is a back-office account. The public site never creates users;
// admins are provisioned by the seed command.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
