package entity

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

// User is an admin-panel operator. Accounts are provisioned directly in the
// database; this service only reads them.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
