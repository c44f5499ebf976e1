package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/scheduling"
	"github.com/RachidAzrou/mefen/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> angka untuk halaman landing admin
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		Volunteers      int64 `json:"volunteers"`
		Rooms           int64 `json:"rooms"`
		Plannings       int64 `json:"plannings"`
		ActiveCount     int   `json:"active_count"`
		UpcomingCount   int   `json:"upcoming_count"`
		PastCount       int   `json:"past_count"`
		PendingRequests int64 `json:"pending_requests"`
		Users           int64 `json:"users"`
	}

	if err := ac.DB.Model(&models.Volunteer{}).Count(&stats.Volunteers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	ac.DB.Model(&models.Room{}).Count(&stats.Rooms)
	ac.DB.Model(&models.Planning{}).Count(&stats.Plannings)
	ac.DB.Model(&models.PendingVolunteer{}).
		Where("status = ?", models.PendingStatusPending).
		Count(&stats.PendingRequests)
	ac.DB.Model(&models.User{}).Count(&stats.Users)

	var plannings []models.Planning
	if err := ac.DB.Find(&plannings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	buckets := scheduling.Classify(plannings, utils.Today())
	stats.ActiveCount = len(buckets.Active)
	stats.UpcomingCount = len(buckets.Upcoming)
	stats.PastCount = len(buckets.Past)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
