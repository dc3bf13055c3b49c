package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	Name      string    `gorm:"not null" json:"name"`                                   // Display name
	Email     string    `gorm:"unique;not null" json:"email"`                           // Unique email, matched exactly as stored
	Password  string    `gorm:"not null" json:"-"`                                      // Hashed password, never serialized
	CreatedAt time.Time `json:"created_at"`                                             // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                                             // Timestamp of last update
	Payments  []Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // One-to-many relationship with Payment
}
