package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/live"
	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/services"
	"github.com/RachidAzrou/mefen/utils"
)

type PendingVolunteerController struct {
	DB    *gorm.DB
	Audit *services.AuditLogger
}

func NewPendingVolunteerController(db *gorm.DB) *PendingVolunteerController {
	return &PendingVolunteerController{DB: db, Audit: services.NewAuditLogger(db)}
}

// Register -> pendaftaran mandiri (publik, tanpa login)
func (pvc *PendingVolunteerController) Register(c *gin.Context) {
	type reqBody struct {
		FirstName   string `json:"first_name" binding:"required,min=2"`
		LastName    string `json:"last_name" binding:"required,min=2"`
		PhoneNumber string `json:"phone_number" binding:"required,min=8"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pending := models.PendingVolunteer{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		PhoneNumber: body.PhoneNumber,
		SubmittedAt: time.Now(),
		Status:      models.PendingStatusPending,
	}

	if err := pvc.DB.Create(&pending).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Volunteer registration received: %s %s", pending.FirstName, pending.LastName)

	live.BroadcastPendingUpdate(pending)
	utils.RespondJSON(c, http.StatusCreated, "Registration received", gin.H{"id": pending.ID})
}

// GetAllPending -> antrian pendaftaran (admin)
func (pvc *PendingVolunteerController) GetAllPending(c *gin.Context) {
	tx := pvc.DB.Order("submitted_at ASC")
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var pending []models.PendingVolunteer
	if err := tx.Find(&pending).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending volunteers", pending)
}

// Approve -> buat record Volunteer dari pendaftaran dan tandai approved
func (pvc *PendingVolunteerController) Approve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pending_id"))

	var pending models.PendingVolunteer
	if err := pvc.DB.First(&pending, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if pending.Status != models.PendingStatusPending {
		utils.RespondError(c, http.StatusConflict, errors.New("registration already processed"))
		return
	}

	volunteer := models.Volunteer{
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
	}
	if err := pvc.DB.Create(&volunteer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pending.Status = models.PendingStatusApproved
	if err := pvc.DB.Save(&pending).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pvc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, pvc.DB),
		Action:     models.ActionVolunteerIntake,
		Details:    detailsPtr(fmt.Sprintf("approved: %s", volunteer.FullName())),
		TargetType: detailsPtr("volunteer"),
		TargetID:   &volunteer.ID,
		TargetName: detailsPtr(volunteer.FullName()),
	})

	live.BroadcastVolunteerUpdate(volunteer)
	live.BroadcastPendingUpdate(pending)

	utils.RespondJSON(c, http.StatusOK, "Registration approved", gin.H{
		"volunteer_id": volunteer.ID,
	})
}

// Reject -> tandai rejected tanpa membuat volunteer
func (pvc *PendingVolunteerController) Reject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("pending_id"))

	var pending models.PendingVolunteer
	if err := pvc.DB.First(&pending, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if pending.Status != models.PendingStatusPending {
		utils.RespondError(c, http.StatusConflict, errors.New("registration already processed"))
		return
	}

	pending.Status = models.PendingStatusRejected
	if err := pvc.DB.Save(&pending).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pvc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, pvc.DB),
		Action:     models.ActionVolunteerIntake,
		Details:    detailsPtr(fmt.Sprintf("rejected: %s %s", pending.FirstName, pending.LastName)),
		TargetType: detailsPtr("pending_volunteer"),
		TargetID:   &pending.ID,
	})

	live.BroadcastPendingUpdate(pending)
	utils.RespondJSON(c, http.StatusOK, "Registration rejected", nil)
}
