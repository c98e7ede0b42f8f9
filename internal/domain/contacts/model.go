package contacts

import "time"

// Contact is one submission from the public contact form. Plain
// insert on the public side; the admin area lists and flips Read.
type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `gorm:"not null;default:false;index" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
