package scheduling

import (
	"time"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

// Buckets adalah hasil partisi planning relatif terhadap "hari ini".
// Untuk rentang valid (start <= end) ketiga bucket disjoint dan menutup
// seluruh input.
type Buckets struct {
	Active   []models.Planning `json:"active"`
	Upcoming []models.Planning `json:"upcoming"`
	Past     []models.Planning `json:"past"`
}

// Classify mempartisi plannings menjadi Active / Upcoming / Past.
// Batas inklusif dua sisi: aktif kalau start <= today <= end.
func Classify(plannings []models.Planning, today time.Time) Buckets {
	today = utils.TruncateToDay(today)

	var b Buckets
	for _, p := range plannings {
		start := utils.TruncateToDay(p.StartDate)
		end := utils.TruncateToDay(p.EndDate)

		switch {
		case start.After(today):
			b.Upcoming = append(b.Upcoming, p)
		case end.Before(today):
			b.Past = append(b.Past, p)
		default:
			b.Active = append(b.Active, p)
		}
	}
	return b
}

// ContainsDay melaporkan apakah day jatuh di dalam [start, end] inklusif,
// dibandingkan pada granularity per hari.
func ContainsDay(p models.Planning, day time.Time) bool {
	day = utils.TruncateToDay(day)
	start := utils.TruncateToDay(p.StartDate)
	end := utils.TruncateToDay(p.EndDate)
	return !day.Before(start) && !day.After(end)
}
