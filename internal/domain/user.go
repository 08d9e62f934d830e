package domain

import "context"

// DefaultCredits is granted to every newly provisioned user.
const DefaultCredits = 10

// User is a platform user, identified externally by email. Rows are
// provisioned lazily on first session creation.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
}

// UserRepository defines user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
