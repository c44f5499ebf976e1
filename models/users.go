package models

import "time"

type User struct {
	ID         uint    `gorm:"primaryKey"`
	Email      string  `gorm:"type:varchar(255); unique;not null"`
	Password   string  `gorm:"type:varchar(255); not null"`
	Admin      bool    `gorm:"not null;default:false"`
	ResetToken *string `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Role menurunkan role string untuk JWT claims dari flag admin
func (u User) Role() string {
	if u.Admin {
		return "admin"
	}
	return "user"
}
