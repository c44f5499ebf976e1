package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/router"
)

func seedPlanningData(t *testing.T, db *gorm.DB) ([]models.Volunteer, []models.Room) {
	t.Helper()

	volunteers := []models.Volunteer{
		{FirstName: "Anna", LastName: "Jansen"},
		{FirstName: "Bart", LastName: "Peeters"},
	}
	rooms := []models.Room{
		{Name: "Grote zaal"},
		{Name: "Keuken"},
		{Name: "Ontvangst"},
	}
	for i := range volunteers {
		assert.NoError(t, db.Create(&volunteers[i]).Error)
	}
	for i := range rooms {
		assert.NoError(t, db.Create(&rooms[i]).Error)
	}
	return volunteers, rooms
}

func TestCreatePlanning(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	w := doJSON(t, r, "POST", "/admin/plannings", adminToken, map[string]interface{}{
		"volunteer_id": volunteers[0].ID,
		"room_id":      rooms[0].ID,
		"start_date":   "2024-06-10",
		"end_date":     "2024-06-12",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Planning{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var logs []models.ActivityLog
	assert.NoError(t, db.Where("action = ?", models.ActionCreate).Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Contains(t, *logs[0].Details, "Anna Jansen")
}

func TestCreatePlanningRejectsInvertedRange(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	// end_date sebelum start_date: klasifikasi tidak terdefinisi, tolak
	w := doJSON(t, r, "POST", "/admin/plannings", adminToken, map[string]interface{}{
		"volunteer_id": volunteers[0].ID,
		"room_id":      rooms[0].ID,
		"start_date":   "2024-06-12",
		"end_date":     "2024-06-10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Planning{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBulkCreatePlanningCartesian(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	w := doJSON(t, r, "POST", "/admin/plannings/bulk", adminToken, map[string]interface{}{
		"volunteer_ids": []uint{volunteers[0].ID, volunteers[1].ID},
		"room_ids":      []uint{rooms[0].ID, rooms[1].ID, rooms[2].ID},
		"start_date":    "2024-07-01",
		"end_date":      "2024-07-07",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(6), data["count"])

	var count int64
	db.Model(&models.Planning{}).Count(&count)
	assert.Equal(t, int64(6), count)

	// Satu entry BULK_CREATE, tidak ada CREATE per record
	var logs []models.ActivityLog
	assert.NoError(t, db.Find(&logs).Error)
	assert.Len(t, logs, 1)
	assert.Equal(t, models.ActionBulkCreate, logs[0].Action)
}

func TestGetPlanningsFilterAndEmptyResult(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	w := doJSON(t, r, "POST", "/admin/plannings", adminToken, map[string]interface{}{
		"volunteer_id": volunteers[0].ID,
		"room_id":      rooms[0].ID,
		"start_date":   "2024-06-10",
		"end_date":     "2024-06-12",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Query cocok (case-insensitive), bucket tidak dipilih: respons per bucket
	w = doJSON(t, r, "GET", "/admin/plannings?q=ANNA", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})
	total := len(data["active"].([]interface{})) +
		len(data["upcoming"].([]interface{})) +
		len(data["past"].([]interface{}))
	assert.Equal(t, 1, total)

	// Query tanpa match: semua bucket kosong
	w = doJSON(t, r, "GET", "/admin/plannings?q=zzzz", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	data = resp["data"].(map[string]interface{})
	assert.Empty(t, data["active"])
	assert.Empty(t, data["upcoming"])
	assert.Empty(t, data["past"])
}

func TestGetPlanningsSortDirection(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	for _, rng := range [][2]string{
		{"2030-06-15", "2030-06-16"},
		{"2030-06-10", "2030-06-12"},
		{"2030-06-20", "2030-06-22"},
	} {
		w := doJSON(t, r, "POST", "/admin/plannings", adminToken, map[string]interface{}{
			"volunteer_id": volunteers[0].ID,
			"room_id":      rooms[0].ID,
			"start_date":   rng[0],
			"end_date":     rng[1],
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	firstStart := func(w map[string]interface{}) string {
		list := w["data"].([]interface{})
		return list[0].(map[string]interface{})["start_date"].(string)
	}

	w := doJSON(t, r, "GET", "/admin/plannings?status=upcoming&sort=asc", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2030-06-10", firstStart(decodeBody(t, w)))

	w = doJSON(t, r, "GET", "/admin/plannings?status=upcoming&sort=desc", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2030-06-20", firstStart(decodeBody(t, w)))
}

func TestDeletePlanningMissingIDLeavesNoAudit(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)

	// Id yang tidak ada: tetap 200, tanpa entry audit
	w := doJSON(t, r, "DELETE", "/admin/plannings/9999", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.ActivityLog{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEditIntentWritesEditLog(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)
	_, adminToken := createUser(t, db, "admin@mefen.be", true)
	volunteers, rooms := seedPlanningData(t, db)

	w := doJSON(t, r, "POST", "/admin/plannings", adminToken, map[string]interface{}{
		"volunteer_id": volunteers[0].ID,
		"room_id":      rooms[0].ID,
		"start_date":   "2024-06-10",
		"end_date":     "2024-06-12",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var planning models.Planning
	assert.NoError(t, db.First(&planning).Error)

	w = doJSON(t, r, "POST", "/admin/plannings/"+itoa(planning.ID)+"/edit-intent", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var logs []models.ActivityLog
	assert.NoError(t, db.Where("action = ?", models.ActionEdit).Find(&logs).Error)
	assert.Len(t, logs, 1)
}
