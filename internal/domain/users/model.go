package users

import "time"

// User is an account able to sign in to the admin area. The portfolio
// has a single seeded admin; the model stays general so more authors
// could be added later.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string
	Email    string `gorm:"not null;uniqueIndex:idx_users_email"`
	Password string `gorm:"not null"` // bcrypt hash
	Role     string `gorm:"not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
