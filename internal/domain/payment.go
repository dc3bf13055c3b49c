package domain

import "time"

// Payment status values
const (
	PaymentStatusCreated   = "created"   // Order created, awaiting verification
	PaymentStatusCompleted = "completed" // Signature verified, benefit granted
	PaymentStatusFailed    = "failed"    // Declared in the schema; no flow writes it
)

// Payment Model
type Payment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`           // Primary key
	UserID     uint       `gorm:"index;not null" json:"user_id"`  // Foreign key to User
	OrderID    string     `gorm:"index;not null" json:"order_id"` // Provider order reference, set at creation
	PaymentID  string     `json:"payment_id"`                     // Provider payment reference, set at verification
	Signature  string     `json:"-"`                              // Provider signature, set at verification
	Amount     int64      `gorm:"not null" json:"amount"`         // Amount in rupees as received from the client
	Status     string     `gorm:"default:created" json:"status"`  // Status: created, completed
	Verified   bool       `gorm:"default:false" json:"verified"`  // Whether the signature check passed
	VerifiedAt *time.Time `json:"verified_at,omitempty"`          // Timestamp of verification, set once
	CreatedAt  time.Time  `json:"created_at"`                     // Timestamp of creation
}
