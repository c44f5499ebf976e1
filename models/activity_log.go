package models

import (
	"time"
)

// Action kinds yang dicatat di activity log
const (
	ActionCreate          = "CREATE"
	ActionBulkCreate      = "BULK_CREATE"
	ActionEdit            = "EDIT"
	ActionDelete          = "DELETE"
	ActionUserCreate      = "USER_CREATE"
	ActionRoleChange      = "ROLE_CHANGE"
	ActionUserDelete      = "USER_DELETE"
	ActionPasswordReset   = "PASSWORD_RESET"
	ActionVolunteerIntake = "VOLUNTEER_INTAKE"
)

// ActivityLog adalah audit trail append-only: dibuat bersama setiap aksi
// yang memutasi data dan tidak pernah diubah atau dihapus oleh aplikasi.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"not null;index" json:"timestamp"`
	UserEmail  string    `gorm:"type:varchar(255);not null;index" json:"user_email"`
	Action     string    `gorm:"type:varchar(32);not null;index" json:"action"`
	Details    *string   `gorm:"type:text" json:"details,omitempty"`
	TargetType *string   `gorm:"type:varchar(32)" json:"target_type,omitempty"`
	TargetID   *uint     `json:"target_id,omitempty"`
	TargetName *string   `gorm:"type:varchar(255)" json:"target_name,omitempty"`
}
