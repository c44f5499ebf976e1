package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/live"
	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

// AuditLogger menulis activity log: append-only, satu entry per aksi yang
// memutasi data. Entry tidak pernah diubah atau dihapus oleh aplikasi.
type AuditLogger struct {
	DB *gorm.DB
}

func NewAuditLogger(db *gorm.DB) *AuditLogger {
	return &AuditLogger{DB: db}
}

// Record menyimpan satu entry dan menyiarkannya ke client live
func (al *AuditLogger) Record(entry models.ActivityLog) error {
	entry.CreatedAt = time.Now()

	if err := al.DB.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("Error writing activity log (%s by %s): %v",
			entry.Action, entry.UserEmail, err)
		return err
	}

	live.BroadcastLogUpdate(entry)
	return nil
}

// helper untuk field pointer di ActivityLog
func strPtr(s string) *string {
	return &s
}
