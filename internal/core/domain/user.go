package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an end customer owning wallet accounts.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminRole is the privilege level of an admin user.
type AdminRole string

const (
	RoleAdmin      AdminRole = "ADMIN"
	RoleSuperAdmin AdminRole = "SUPER_ADMIN"
)

// AdminUser is an operator who works the request queue.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
