package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/services"
	"github.com/RachidAzrou/mefen/utils"
)

type UserController struct {
	DB    *gorm.DB
	Audit *services.AuditLogger
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Audit: services.NewAuditLogger(db)}
}

// Login -> return JWT; role di claims diturunkan dari flag admin
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s (admin=%v)", user.Email, user.Admin)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": user.Admin,
		"email": user.Email,
	})
}

// Logout -> blacklist token sampai kadaluarsa
func (uc *UserController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> identitas session dari JWT
func (uc *UserController) GetProfile(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"admin": user.Admin,
	})
}

// GetAllUsers -> daftar akun (admin only, di-gate oleh middleware)
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":         u.ID,
			"email":      u.Email,
			"admin":      u.Admin,
			"created_at": u.CreatedAt,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "All users", out)
}

// CreateUser -> admin membuat akun baru
func (uc *UserController) CreateUser(c *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Admin    bool   `json:"admin"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashed),
		Admin:    req.Admin,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New user created: %s (admin=%v)", user.Email, user.Admin)

	uc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, uc.DB),
		Action:     models.ActionUserCreate,
		Details:    detailsPtr(fmt.Sprintf("%s (admin=%v)", user.Email, user.Admin)),
		TargetType: detailsPtr("user"),
		TargetID:   &user.ID,
		TargetName: &user.Email,
	})

	utils.RespondJSON(c, http.StatusCreated, "User created", gin.H{
		"user_id": user.ID,
	})
}

// UpdateUserRole -> toggle flag admin
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	type request struct {
		Admin *bool `json:"admin" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	user.Admin = *req.Admin
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, uc.DB),
		Action:     models.ActionRoleChange,
		Details:    detailsPtr(fmt.Sprintf("%s -> admin=%v", user.Email, user.Admin)),
		TargetType: detailsPtr("user"),
		TargetID:   &user.ID,
		TargetName: &user.Email,
	})

	utils.RespondJSON(c, http.StatusOK, "User role updated", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"admin": user.Admin,
	})
}

// DeleteUser -> hapus akun
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := uc.DB.Delete(&models.User{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, uc.DB),
		Action:     models.ActionUserDelete,
		TargetType: detailsPtr("user"),
		TargetID:   &user.ID,
		TargetName: &user.Email,
	})

	utils.RespondJSON(c, http.StatusOK, "User deleted", gin.H{"user_id": user.ID})
}

// RequestPasswordReset -> terbitkan reset token untuk akun. Pengiriman email
// ada di luar aplikasi ini; token dikembalikan ke admin yang memintanya.
func (uc *UserController) RequestPasswordReset(c *gin.Context) {
	type request struct {
		Email string `json:"email" binding:"required,email"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no account for that email"))
		return
	}

	token := uuid.NewString()
	user.ResetToken = &token
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.Audit.Record(models.ActivityLog{
		UserEmail:  actorEmail(c, uc.DB),
		Action:     models.ActionPasswordReset,
		TargetType: detailsPtr("user"),
		TargetID:   &user.ID,
		TargetName: &user.Email,
	})

	utils.RespondJSON(c, http.StatusOK, "Password reset token issued", gin.H{
		"reset_token": token,
	})
}

// detailsPtr: helper untuk field pointer di ActivityLog
func detailsPtr(s string) *string {
	return &s
}
