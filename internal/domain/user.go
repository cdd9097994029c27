package domain

import (
	"context"
	"strings"
	"time"
)

// User is an authentication account. It exists only to supply the acting
// principal for audit stamping and is deliberately outside the soft-delete
// contract the HR entities share.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Roles        string    `gorm:"size:255" json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RoleList splits the comma-separated Roles column, dropping empty entries.
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	var roles []string
	for _, r := range strings.Split(u.Roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

// UserRepository defines the data access interface for auth users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
