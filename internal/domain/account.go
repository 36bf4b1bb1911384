package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroupAccessAll is the access code that lifts group restrictions.
const GroupAccessAll = "ALL"

// Account is a person with access rights to plan records.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	Company      string
	// Regions holds canonical region ids. Empty for admins.
	Regions     []string
	GroupAccess string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the account has global company scope.
func (a *Account) IsAdmin() bool { return a.Role.IsAdmin() }
