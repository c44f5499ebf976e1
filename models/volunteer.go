package models

import "time"

type Volunteer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName dipakai untuk pencarian dan detail activity log
func (v Volunteer) FullName() string {
	return v.FirstName + " " + v.LastName
}
