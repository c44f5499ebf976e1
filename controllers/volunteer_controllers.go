package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/live"
	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

type VolunteerController struct {
	DB *gorm.DB
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db}
}

// GetAllVolunteers
func (vc *VolunteerController) GetAllVolunteers(c *gin.Context) {
	var volunteers []models.Volunteer
	if err := vc.DB.Find(&volunteers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All volunteers", volunteers)
}

// CreateVolunteer
func (vc *VolunteerController) CreateVolunteer(c *gin.Context) {
	type reqBody struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	volunteer := models.Volunteer{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}

	if err := vc.DB.Create(&volunteer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastVolunteerUpdate(volunteer)
	utils.RespondJSON(c, http.StatusCreated, "Volunteer created", volunteer)
}

// GetVolunteerByID
func (vc *VolunteerController) GetVolunteerByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("volunteer_id"))

	var volunteer models.Volunteer
	if err := vc.DB.First(&volunteer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Volunteer detail", volunteer)
}

// UpdateVolunteer
func (vc *VolunteerController) UpdateVolunteer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("volunteer_id"))

	type reqBody struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var volunteer models.Volunteer
	if err := vc.DB.First(&volunteer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.FirstName != "" {
		volunteer.FirstName = body.FirstName
	}
	if body.LastName != "" {
		volunteer.LastName = body.LastName
	}

	if err := vc.DB.Save(&volunteer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastVolunteerUpdate(volunteer)
	utils.RespondJSON(c, http.StatusOK, "Volunteer updated", volunteer)
}

// DeleteVolunteer -> planning yang menunjuk volunteer ini di-SET NULL dan
// tampil sebagai "unassigned"
func (vc *VolunteerController) DeleteVolunteer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("volunteer_id"))

	if err := vc.DB.Delete(&models.Volunteer{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastVolunteerDelete(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Volunteer deleted", gin.H{"volunteer_id": id})
}
