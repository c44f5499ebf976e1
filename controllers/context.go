package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
)

// actorEmail mengambil email user yang sedang login untuk activity log.
// user_id diset oleh AuthMiddleware; kalau record user sudah terhapus
// (session lama) log tetap jalan dengan placeholder.
func actorEmail(c *gin.Context, db *gorm.DB) string {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return "unknown"
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		return "unknown"
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return "unknown"
	}
	return user.Email
}
