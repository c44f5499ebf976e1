package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RachidAzrou/mefen/scheduling"
	"github.com/RachidAzrou/mefen/utils"
)

type CalendarController struct {
	DB *gorm.DB
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

// roomGroup adalah satu room di satu hari kalender, dengan responsible
// volunteer paling depan
type roomGroup struct {
	RoomID    uint           `json:"room_id"`
	RoomName  string         `json:"room_name"`
	Channel   *string        `json:"channel,omitempty"`
	Plannings []planningView `json:"plannings"`
}

// GetWeekCalendar -> view kalender mingguan read-only (publik).
// ?week=YYYY-MM-DD memilih minggu (dinormalkan ke Senin); default minggu ini.
func (cc *CalendarController) GetWeekCalendar(c *gin.Context) {
	weekStart := utils.Today()
	if weekStr := c.Query("week"); weekStr != "" {
		d, err := utils.ParseDate(weekStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid week, expected YYYY-MM-DD"))
			return
		}
		weekStart = d
	}

	pc := PlanningController{DB: cc.DB}
	plannings, volunteers, rooms, err := pc.loadSnapshot()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	vm, rm := indexByID(volunteers, rooms)

	week := scheduling.BuildWeek(weekStart, plannings)

	days := make(map[string][]roomGroup, len(week))
	for day, schedule := range week {
		groups := make([]roomGroup, 0, len(schedule))
		for roomID, group := range schedule {
			rg := roomGroup{
				RoomID:    roomID,
				RoomName:  "-",
				Plannings: toViews(group, vm, rm),
			}
			if room, ok := rm[roomID]; ok {
				rg.RoomName = room.Name
				rg.Channel = room.Channel
			}
			groups = append(groups, rg)
		}

		// Map iteration tidak berurutan; urutkan grup per nama room supaya
		// output stabil
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].RoomName != groups[j].RoomName {
				return groups[i].RoomName < groups[j].RoomName
			}
			return groups[i].RoomID < groups[j].RoomID
		})
		days[day] = groups
	}

	utils.RespondJSON(c, http.StatusOK, "Week calendar", gin.H{
		"week_start": utils.FormatDate(scheduling.WeekStart(weekStart)),
		"days":       days,
	})
}
