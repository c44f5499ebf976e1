package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/router"
)

func TestRegisterPendingVolunteer(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	// Publik: tanpa token
	w := doJSON(t, r, "POST", "/volunteers/register", "", map[string]interface{}{
		"first_name":   "Fatima",
		"last_name":    "El Amrani",
		"phone_number": "0471234567",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var pending models.PendingVolunteer
	assert.NoError(t, db.First(&pending).Error)
	assert.Equal(t, "Fatima", pending.FirstName)
	assert.Equal(t, models.PendingStatusPending, pending.Status)
	assert.False(t, pending.SubmittedAt.IsZero())
}

func TestRegisterPendingVolunteerValidation(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	// Nama terlalu pendek -> 400, tidak ada record
	w := doJSON(t, r, "POST", "/volunteers/register", "", map[string]interface{}{
		"first_name":   "F",
		"last_name":    "El Amrani",
		"phone_number": "0471234567",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.PendingVolunteer{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestApprovePendingVolunteer(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)

	pending := models.PendingVolunteer{
		FirstName:   "Youssef",
		LastName:    "Benali",
		PhoneNumber: "0479876543",
		Status:      models.PendingStatusPending,
	}
	assert.NoError(t, db.Create(&pending).Error)

	w := doJSON(t, r, "POST", "/admin/pending-volunteers/"+itoa(pending.ID)+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Approve membuat record Volunteer dan menandai antrian approved
	var volunteer models.Volunteer
	assert.NoError(t, db.Where("first_name = ?", "Youssef").First(&volunteer).Error)
	assert.Equal(t, "Benali", volunteer.LastName)

	assert.NoError(t, db.First(&pending, pending.ID).Error)
	assert.Equal(t, models.PendingStatusApproved, pending.Status)

	var entry models.ActivityLog
	assert.NoError(t, db.Where("action = ?", models.ActionVolunteerIntake).First(&entry).Error)
	assert.Equal(t, "admin@mefen.be", entry.UserEmail)
	assert.NotNil(t, entry.TargetName)
	assert.Equal(t, "Youssef Benali", *entry.TargetName)
}

func TestRejectPendingVolunteer(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)

	pending := models.PendingVolunteer{
		FirstName:   "Karim",
		LastName:    "Haddad",
		PhoneNumber: "0471112233",
		Status:      models.PendingStatusPending,
	}
	assert.NoError(t, db.Create(&pending).Error)

	w := doJSON(t, r, "POST", "/admin/pending-volunteers/"+itoa(pending.ID)+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&pending, pending.ID).Error)
	assert.Equal(t, models.PendingStatusRejected, pending.Status)

	// Reject tidak membuat volunteer
	var count int64
	db.Model(&models.Volunteer{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestProcessPendingVolunteerTwice(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)

	pending := models.PendingVolunteer{
		FirstName:   "Sara",
		LastName:    "Aydin",
		PhoneNumber: "0474445566",
		Status:      models.PendingStatusPending,
	}
	assert.NoError(t, db.Create(&pending).Error)

	w := doJSON(t, r, "POST", "/admin/pending-volunteers/"+itoa(pending.ID)+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Approve kedua kali -> conflict, tidak ada volunteer duplikat
	w = doJSON(t, r, "POST", "/admin/pending-volunteers/"+itoa(pending.ID)+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/admin/pending-volunteers/"+itoa(pending.ID)+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Volunteer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
