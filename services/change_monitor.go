package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/live"
	"github.com/RachidAzrou/mefen/models"
)

// ChangeMonitor mem-polling tabel db_changes (diisi trigger MySQL) dan
// menyiarkan perubahan ke client WebSocket. Ini yang membuat kalender dan
// halaman planning ikut ter-update saat data diubah dari session admin lain.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

type DBChange struct {
	ID         int64     `gorm:"column:id"`
	TableName  string    `gorm:"column:table_name"`
	RecordID   int64     `gorm:"column:record_id"`
	ActionType string    `gorm:"column:action_type"`
	ChangedAt  time.Time `gorm:"column:changed_at"`
	Processed  bool      `gorm:"column:processed"`
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []DBChange

	// Gunakan transaction untuk mencegah race condition
	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		log.Printf("Error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		switch change.TableName {
		case "plannings":
			cm.processPlanningChange(change)
		case "rooms":
			cm.processRoomChange(change)
		case "volunteers":
			cm.processVolunteerChange(change)
		case "pending_volunteers":
			cm.processPendingChange(change)
		}

		// Mark sebagai processed
		if err := tx.Model(&DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			log.Printf("Error marking change as processed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing transaction: %v", err)
		tx.Rollback()
		return
	}

	if len(changes) > 0 {
		log.Printf("Processed %d changes", len(changes))
	}
}

func (cm *ChangeMonitor) processPlanningChange(change DBChange) {
	if change.ActionType == "DELETE" {
		live.BroadcastPlanningDelete(uint(change.RecordID))
		return
	}

	var planning models.Planning
	if err := cm.DB.Preload("Volunteer").Preload("Room").
		First(&planning, change.RecordID).Error; err != nil {
		log.Printf("Error fetching planning: %v", err)
		return
	}
	live.BroadcastPlanningUpdate(planning)
}

func (cm *ChangeMonitor) processRoomChange(change DBChange) {
	if change.ActionType == "DELETE" {
		live.BroadcastRoomDelete(uint(change.RecordID))
		return
	}

	var room models.Room
	if err := cm.DB.First(&room, change.RecordID).Error; err != nil {
		log.Printf("Error fetching room: %v", err)
		return
	}
	live.BroadcastRoomUpdate(room)
}

func (cm *ChangeMonitor) processVolunteerChange(change DBChange) {
	if change.ActionType == "DELETE" {
		live.BroadcastVolunteerDelete(uint(change.RecordID))
		return
	}

	var volunteer models.Volunteer
	if err := cm.DB.First(&volunteer, change.RecordID).Error; err != nil {
		log.Printf("Error fetching volunteer: %v", err)
		return
	}
	live.BroadcastVolunteerUpdate(volunteer)
}

func (cm *ChangeMonitor) processPendingChange(change DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var pending models.PendingVolunteer
	if err := cm.DB.First(&pending, change.RecordID).Error; err != nil {
		log.Printf("Error fetching pending volunteer: %v", err)
		return
	}
	live.BroadcastPendingUpdate(pending)
}
