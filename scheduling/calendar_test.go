package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RachidAzrou/mefen/models"
)

func TestWeekStartNormalizesToMonday(t *testing.T) {
	monday := mustDate(t, "2024-06-10")

	for _, day := range []string{
		"2024-06-10", // Senin
		"2024-06-12",
		"2024-06-15",
		"2024-06-16", // Minggu
	} {
		assert.Equalf(t, monday, WeekStart(mustDate(t, day)), "day %s", day)
	}
}

func TestBuildWeekSpanningPlanning(t *testing.T) {
	// Planning 10-12 Juni muncul tepat di hari 10, 11 dan 12
	p := planning(1, 1, 1, "2024-06-10", "2024-06-12", false)

	week := BuildWeek(mustDate(t, "2024-06-10"), []models.Planning{p})
	assert.Len(t, week, 7)

	for day, schedule := range week {
		switch day {
		case "2024-06-10", "2024-06-11", "2024-06-12":
			assert.Lenf(t, schedule[1], 1, "day %s", day)
		default:
			assert.Emptyf(t, schedule, "day %s", day)
		}
	}
}

func TestBuildWeekSingleDayPlanning(t *testing.T) {
	p := planning(1, 1, 1, "2024-06-11", "2024-06-11", false)

	week := BuildWeek(mustDate(t, "2024-06-10"), []models.Planning{p})
	assert.Len(t, week["2024-06-11"][1], 1)
	assert.Empty(t, week["2024-06-10"])
	assert.Empty(t, week["2024-06-12"])
}

func TestBuildWeekGroupsByRoomAndOmitsEmptyRooms(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-10", false),
		planning(2, 2, 2, "2024-06-10", "2024-06-10", false),
		planning(3, 3, 1, "2024-06-10", "2024-06-10", false),
	}

	week := BuildWeek(mustDate(t, "2024-06-10"), plannings)
	day := week["2024-06-10"]

	assert.Len(t, day, 2)
	assert.Len(t, day[1], 2)
	assert.Len(t, day[2], 1)

	// Room 3 tidak punya planning: tidak muncul di map
	_, exists := day[3]
	assert.False(t, exists)
}

func TestBuildWeekResponsibleFirst(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-10", false),
		planning(2, 2, 1, "2024-06-10", "2024-06-10", true),
		planning(3, 3, 1, "2024-06-10", "2024-06-10", false),
	}

	week := BuildWeek(mustDate(t, "2024-06-10"), plannings)
	group := week["2024-06-10"][1]

	assert.Len(t, group, 3)
	assert.Equal(t, uint(2), group[0].ID)

	// Urutan sisanya stable terhadap input
	assert.Equal(t, uint(1), group[1].ID)
	assert.Equal(t, uint(3), group[2].ID)

	// Komputasi ulang pada input yang sama menghasilkan urutan yang sama
	again := BuildWeek(mustDate(t, "2024-06-10"), plannings)
	assert.Equal(t, group, again["2024-06-10"][1])
}

func TestBuildWeekMixedLocations(t *testing.T) {
	// Anchor minggu dari clock server lokal, tanggal planning dari parse (UTC)
	cest := time.FixedZone("CEST", 2*60*60)
	weekStart := time.Date(2024, 6, 12, 9, 30, 0, 0, cest) // Rabu pagi

	p := planning(1, 1, 1, "2024-06-10", "2024-06-12", false)

	week := BuildWeek(weekStart, []models.Planning{p})
	assert.Len(t, week, 7)
	assert.Len(t, week["2024-06-10"][1], 1)
	assert.Len(t, week["2024-06-12"][1], 1)
	assert.Empty(t, week["2024-06-13"])
}

func TestBuildWeekDanglingRoomGroupedUnderZero(t *testing.T) {
	p := models.Planning{ID: 1, StartDate: mustDate(t, "2024-06-10"), EndDate: mustDate(t, "2024-06-10")}

	week := BuildWeek(mustDate(t, "2024-06-10"), []models.Planning{p})
	assert.Len(t, week["2024-06-10"][0], 1)
}
