package models

import (
	"time"
)

// Planning mengikat satu volunteer ke satu room untuk rentang tanggal inklusif.
// FK nullable dengan SET NULL: planning yang menunjuk volunteer/room yang sudah
// dihapus tetap valid dan ditampilkan sebagai "unassigned" / "-".
type Planning struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	VolunteerID   *uint      `gorm:"index" json:"volunteer_id"`
	Volunteer     *Volunteer `gorm:"foreignKey:VolunteerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"volunteer,omitempty"`
	RoomID        *uint      `gorm:"index" json:"room_id"`
	Room          *Room      `gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"room,omitempty"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time  `gorm:"type:date;not null" json:"end_date"`
	IsResponsible bool       `gorm:"default:false" json:"is_responsible"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VolunteerName mengembalikan nama lengkap atau "unassigned" kalau referensi hilang
func (p Planning) VolunteerName() string {
	if p.Volunteer == nil {
		return "unassigned"
	}
	return p.Volunteer.FullName()
}

// RoomName mengembalikan nama room atau "-" kalau referensi hilang
func (p Planning) RoomName() string {
	if p.Room == nil {
		return "-"
	}
	return p.Room.Name
}
