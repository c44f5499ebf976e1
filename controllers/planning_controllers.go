package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/scheduling"
	"github.com/RachidAzrou/mefen/services"
	"github.com/RachidAzrou/mefen/utils"
)

type PlanningController struct {
	DB      *gorm.DB
	Service *services.PlanningService
}

func NewPlanningController(db *gorm.DB) *PlanningController {
	return &PlanningController{
		DB:      db,
		Service: services.NewPlanningService(db),
	}
}

// planningView adalah bentuk planning di response: nama sudah di-resolve,
// tanggal dalam format YYYY-MM-DD
type planningView struct {
	ID            uint   `json:"id"`
	VolunteerID   *uint  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
	RoomID        *uint  `json:"room_id"`
	RoomName      string `json:"room_name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	IsResponsible bool   `json:"is_responsible"`
}

func toView(p models.Planning, volunteers map[uint]models.Volunteer, rooms map[uint]models.Room) planningView {
	view := planningView{
		ID:            p.ID,
		VolunteerID:   p.VolunteerID,
		VolunteerName: "unassigned",
		RoomID:        p.RoomID,
		RoomName:      "-",
		StartDate:     utils.FormatDate(p.StartDate),
		EndDate:       utils.FormatDate(p.EndDate),
		IsResponsible: p.IsResponsible,
	}
	if p.VolunteerID != nil {
		if v, ok := volunteers[*p.VolunteerID]; ok {
			view.VolunteerName = v.FullName()
		}
	}
	if p.RoomID != nil {
		if r, ok := rooms[*p.RoomID]; ok {
			view.RoomName = r.Name
		}
	}
	return view
}

func toViews(plannings []models.Planning, volunteers map[uint]models.Volunteer, rooms map[uint]models.Room) []planningView {
	views := make([]planningView, 0, len(plannings))
	for _, p := range plannings {
		views = append(views, toView(p, volunteers, rooms))
	}
	return views
}

// loadSnapshot memuat seluruh entity lists untuk fungsi pure scheduling.
// Urutan plannings per id = urutan insert di store.
func (pc *PlanningController) loadSnapshot() ([]models.Planning, []models.Volunteer, []models.Room, error) {
	var plannings []models.Planning
	if err := pc.DB.Order("id ASC").Find(&plannings).Error; err != nil {
		return nil, nil, nil, err
	}
	var volunteers []models.Volunteer
	if err := pc.DB.Find(&volunteers).Error; err != nil {
		return nil, nil, nil, err
	}
	var rooms []models.Room
	if err := pc.DB.Find(&rooms).Error; err != nil {
		return nil, nil, nil, err
	}
	return plannings, volunteers, rooms, nil
}

func indexByID(volunteers []models.Volunteer, rooms []models.Room) (map[uint]models.Volunteer, map[uint]models.Room) {
	vm := make(map[uint]models.Volunteer, len(volunteers))
	for _, v := range volunteers {
		vm[v.ID] = v
	}
	rm := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		rm[r.ID] = r
	}
	return vm, rm
}

// GetAllPlannings -> lijst planning per bucket, dengan filter & sort opsional.
// Query params: status (active|upcoming|past), q (zoektext), date (YYYY-MM-DD),
// sort (asc|desc; kosong = urutan insert)
func (pc *PlanningController) GetAllPlannings(c *gin.Context) {
	plannings, volunteers, rooms, err := pc.loadSnapshot()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	vm, rm := indexByID(volunteers, rooms)

	query := c.Query("q")

	var refDate *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := utils.ParseDate(dateStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		refDate = &d
	}

	sortState := scheduling.SortState{}
	switch c.Query("sort") {
	case "asc":
		sortState = scheduling.SortState{Enabled: true}
	case "desc":
		sortState = scheduling.SortState{Enabled: true, Descending: true}
	case "":
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid sort, expected asc or desc"))
		return
	}

	buckets := scheduling.Classify(plannings, utils.Today())

	apply := func(set []models.Planning) []planningView {
		return toViews(scheduling.Filter(set, volunteers, rooms, query, refDate, sortState), vm, rm)
	}

	switch c.Query("status") {
	case "active":
		utils.RespondJSON(c, http.StatusOK, "Active plannings", apply(buckets.Active))
	case "upcoming":
		utils.RespondJSON(c, http.StatusOK, "Upcoming plannings", apply(buckets.Upcoming))
	case "past":
		utils.RespondJSON(c, http.StatusOK, "Past plannings", apply(buckets.Past))
	case "":
		utils.RespondJSON(c, http.StatusOK, "All plannings", gin.H{
			"active":   apply(buckets.Active),
			"upcoming": apply(buckets.Upcoming),
			"past":     apply(buckets.Past),
		})
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status, expected active, upcoming or past"))
	}
}

// GetPlanningByID
func (pc *PlanningController) GetPlanningByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("planning_id"))

	var planning models.Planning
	if err := pc.DB.Preload("Volunteer").Preload("Room").First(&planning, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Planning detail", planning)
}

type planningRequest struct {
	VolunteerID   *uint  `json:"volunteer_id"`
	RoomID        *uint  `json:"room_id"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	IsResponsible bool   `json:"is_responsible"`
}

// parseRange memvalidasi rentang di boundary: klasifikasi untuk start > end
// tidak terdefinisi, jadi rentang seperti itu ditolak sebelum masuk store
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end_date must not be before start_date")
	}
	return start, end, nil
}

// CreatePlanning
func (pc *PlanningController) CreatePlanning(c *gin.Context) {
	var body planningRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	start, end, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	planning, err := pc.Service.Create(actorEmail(c, pc.DB), services.PlanningInput{
		VolunteerID:   body.VolunteerID,
		RoomID:        body.RoomID,
		StartDate:     start,
		EndDate:       end,
		IsResponsible: body.IsResponsible,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Planning created", planning)
}

// CreateBulkPlanning -> cartesian product volunteers x rooms, rentang sama
func (pc *PlanningController) CreateBulkPlanning(c *gin.Context) {
	type reqBody struct {
		VolunteerIDs  []uint `json:"volunteer_ids" binding:"required,min=1"`
		RoomIDs       []uint `json:"room_ids" binding:"required,min=1"`
		StartDate     string `json:"start_date" binding:"required"`
		EndDate       string `json:"end_date" binding:"required"`
		IsResponsible bool   `json:"is_responsible"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	start, end, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := pc.Service.CreateBulk(actorEmail(c, pc.DB),
		body.VolunteerIDs, body.RoomIDs, start, end, body.IsResponsible)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Plannings created", gin.H{
		"count":     len(created),
		"plannings": created,
	})
}

// UpdatePlanning -> timpa seluruh field
func (pc *PlanningController) UpdatePlanning(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("planning_id"))

	var body planningRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	start, end, err := parseRange(body.StartDate, body.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	planning, err := pc.Service.Update(actorEmail(c, pc.DB), uint(id), services.PlanningInput{
		VolunteerID:   body.VolunteerID,
		RoomID:        body.RoomID,
		StartDate:     start,
		EndDate:       end,
		IsResponsible: body.IsResponsible,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Planning updated", planning)
}

// LogEditIntent -> dipanggil saat dialog edit dibuka
func (pc *PlanningController) LogEditIntent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("planning_id"))

	if err := pc.Service.LogEditIntent(actorEmail(c, pc.DB), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Edit intent logged", nil)
}

// DeletePlanning -> id yang tidak ada tetap 200, tanpa entry audit
func (pc *PlanningController) DeletePlanning(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("planning_id"))

	if err := pc.Service.Delete(actorEmail(c, pc.DB), uint(id)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Planning deleted", gin.H{"planning_id": id})
}
