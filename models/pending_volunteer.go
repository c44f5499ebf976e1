package models

import "time"

// Status antrian pendaftaran mandiri
const (
	PendingStatusPending  = "pending"
	PendingStatusApproved = "approved"
	PendingStatusRejected = "rejected"
)

type PendingVolunteer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber string    `gorm:"type:varchar(30);not null" json:"phone_number"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	Status      string    `gorm:"type:varchar(15);not null;default:'pending'" json:"status"`
}
