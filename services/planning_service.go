package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/live"
	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

// PlanningService menangani semua mutasi planning. Setiap aksi yang mengubah
// data diiringi satu tulisan activity log (bulk create: satu entry ringkasan,
// bukan per record).
type PlanningService struct {
	DB    *gorm.DB
	Audit *AuditLogger
}

func NewPlanningService(db *gorm.DB) *PlanningService {
	return &PlanningService{
		DB:    db,
		Audit: NewAuditLogger(db),
	}
}

// PlanningInput adalah field lengkap sebuah planning; update menimpa semuanya
type PlanningInput struct {
	VolunteerID   *uint
	RoomID        *uint
	StartDate     time.Time
	EndDate       time.Time
	IsResponsible bool
}

const targetTypePlanning = "planning"

// Create menulis satu planning baru dan mencatat aksi CREATE dengan nama
// volunteer/room yang sudah di-resolve di details
func (ps *PlanningService) Create(userEmail string, in PlanningInput) (models.Planning, error) {
	p, err := ps.createOne(in)
	if err != nil {
		return models.Planning{}, err
	}

	details := fmt.Sprintf("%s -> %s (%s - %s)",
		p.VolunteerName(), p.RoomName(),
		utils.FormatDate(p.StartDate), utils.FormatDate(p.EndDate))

	ps.Audit.Record(models.ActivityLog{
		UserEmail:  userEmail,
		Action:     models.ActionCreate,
		Details:    strPtr(details),
		TargetType: strPtr(targetTypePlanning),
		TargetID:   &p.ID,
		TargetName: strPtr(p.VolunteerName()),
	})

	return p, nil
}

// CreateBulk menulis N x M planning untuk rentang tanggal yang sama, satu per
// satu (setiap write menunggu write sebelumnya selesai), lalu mencatat satu
// entry BULK_CREATE ringkasan setelah write terakhir.
func (ps *PlanningService) CreateBulk(userEmail string, volunteerIDs, roomIDs []uint, start, end time.Time, responsible bool) ([]models.Planning, error) {
	created := make([]models.Planning, 0, len(volunteerIDs)*len(roomIDs))

	for _, volunteerID := range volunteerIDs {
		for _, roomID := range roomIDs {
			vID, rID := volunteerID, roomID
			p, err := ps.createOne(PlanningInput{
				VolunteerID:   &vID,
				RoomID:        &rID,
				StartDate:     start,
				EndDate:       end,
				IsResponsible: responsible,
			})
			if err != nil {
				return created, err
			}
			created = append(created, p)
		}
	}

	details := fmt.Sprintf("%d volunteers x %d rooms = %d plannings (%s - %s)",
		len(volunteerIDs), len(roomIDs), len(created),
		utils.FormatDate(start), utils.FormatDate(end))

	ps.Audit.Record(models.ActivityLog{
		UserEmail:  userEmail,
		Action:     models.ActionBulkCreate,
		Details:    strPtr(details),
		TargetType: strPtr(targetTypePlanning),
	})

	return created, nil
}

// Update menimpa seluruh field sebuah planning. Tidak ada entry log untuk
// edit; niat edit dicatat terpisah lewat LogEditIntent saat dialog dibuka.
func (ps *PlanningService) Update(userEmail string, id uint, in PlanningInput) (models.Planning, error) {
	var p models.Planning
	if err := ps.DB.First(&p, id).Error; err != nil {
		return models.Planning{}, err
	}

	p.VolunteerID = in.VolunteerID
	p.RoomID = in.RoomID
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate
	p.IsResponsible = in.IsResponsible

	if err := ps.DB.Save(&p).Error; err != nil {
		return models.Planning{}, err
	}

	p = ps.reload(p.ID)
	live.BroadcastPlanningUpdate(p)
	return p, nil
}

// LogEditIntent mencatat aksi EDIT ketika dialog edit dibuka
func (ps *PlanningService) LogEditIntent(userEmail string, id uint) error {
	var p models.Planning
	if err := ps.DB.Preload("Volunteer").Preload("Room").First(&p, id).Error; err != nil {
		return err
	}

	details := fmt.Sprintf("%s -> %s (%s - %s)",
		p.VolunteerName(), p.RoomName(),
		utils.FormatDate(p.StartDate), utils.FormatDate(p.EndDate))

	return ps.Audit.Record(models.ActivityLog{
		UserEmail:  userEmail,
		Action:     models.ActionEdit,
		Details:    strPtr(details),
		TargetType: strPtr(targetTypePlanning),
		TargetID:   &p.ID,
		TargetName: strPtr(p.VolunteerName()),
	})
}

// Delete membaca record dulu (untuk nama di log), menghapusnya, lalu menulis
// entry DELETE. Id yang tidak ada tidak dianggap error: cukup log ke console,
// tanpa entry audit.
func (ps *PlanningService) Delete(userEmail string, id uint) error {
	var p models.Planning
	if err := ps.DB.Preload("Volunteer").Preload("Room").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("Delete planning %d: record not found", id)
			return nil
		}
		utils.ErrorLogger.Printf("Delete planning %d: pre-read failed: %v", id, err)
		return nil
	}

	volunteerName := p.VolunteerName()
	roomName := p.RoomName()

	if err := ps.DB.Delete(&models.Planning{}, id).Error; err != nil {
		utils.ErrorLogger.Printf("Delete planning %d failed: %v", id, err)
		return nil
	}

	details := fmt.Sprintf("%s -> %s (%s - %s)",
		volunteerName, roomName,
		utils.FormatDate(p.StartDate), utils.FormatDate(p.EndDate))

	ps.Audit.Record(models.ActivityLog{
		UserEmail:  userEmail,
		Action:     models.ActionDelete,
		Details:    strPtr(details),
		TargetType: strPtr(targetTypePlanning),
		TargetID:   &id,
		TargetName: strPtr(volunteerName),
	})

	live.BroadcastPlanningDelete(id)
	return nil
}

// createOne menulis satu record dan menyiarkannya, tanpa entry audit
func (ps *PlanningService) createOne(in PlanningInput) (models.Planning, error) {
	p := models.Planning{
		VolunteerID:   in.VolunteerID,
		RoomID:        in.RoomID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsResponsible: in.IsResponsible,
	}

	if err := ps.DB.Create(&p).Error; err != nil {
		return models.Planning{}, err
	}

	p = ps.reload(p.ID)
	live.BroadcastPlanningUpdate(p)
	return p, nil
}

// reload memuat ulang planning beserta relasinya; referensi yang hilang
// dibiarkan nil (ditampilkan "unassigned" / "-")
func (ps *PlanningService) reload(id uint) models.Planning {
	var p models.Planning
	ps.DB.Preload("Volunteer").Preload("Room").First(&p, id)
	return p
}
