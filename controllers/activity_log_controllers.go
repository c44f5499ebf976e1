package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GetAllLogs -> audit trail, terbaru dulu. Filter opsional: action, email.
// Log tidak pernah diubah atau dihapus, jadi hanya ada read endpoints.
func (alc *ActivityLogController) GetAllLogs(c *gin.Context) {
	tx := alc.DB.Order("created_at DESC").Order("id DESC")

	if action := c.Query("action"); action != "" {
		tx = tx.Where("action = ?", action)
	}
	if email := c.Query("email"); email != "" {
		tx = tx.Where("user_email = ?", email)
	}

	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	var logs []models.ActivityLog
	if err := tx.Limit(limit).Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Activity log", logs)
}

// GetLogByID
func (alc *ActivityLogController) GetLogByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("log_id"))

	var entry models.ActivityLog
	if err := alc.DB.First(&entry, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Activity log detail", entry)
}
