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

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// GetAllRooms -> publik, kalender butuh nama room
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	if err := rc.DB.Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All rooms", rooms)
}

// CreateRoom
func (rc *RoomController) CreateRoom(c *gin.Context) {
	type reqBody struct {
		Name    string  `json:"name" binding:"required"`
		Channel *string `json:"channel"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room := models.Room{
		Name:    body.Name,
		Channel: body.Channel,
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastRoomUpdate(room)
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

// GetRoomByID
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

// UpdateRoom
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	type reqBody struct {
		Name    string  `json:"name"`
		Channel *string `json:"channel"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != "" {
		room.Name = body.Name
	}
	if body.Channel != nil {
		room.Channel = body.Channel
	}

	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastRoomUpdate(room)
	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

// DeleteRoom -> planning yang menunjuk room ini tampil sebagai "-"
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	if err := rc.DB.Delete(&models.Room{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastRoomDelete(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"room_id": id})
}
