package scheduling

import (
	"sort"
	"strings"
	"time"

	"github.com/RachidAzrou/mefen/models"
)

// SortState adalah toggle sort kronologis di halaman planning
type SortState struct {
	Enabled    bool
	Descending bool
}

// Filter menerapkan pencarian teks bebas dan filter tanggal tunggal, lalu
// (opsional) sort kronologis. Semuanya pure: input tidak pernah dimutasi dan
// hasilnya hanya bergantung pada argumen.
//
// Teks cocok kalau query adalah substring (case-insensitive) dari nama lengkap
// volunteer ATAU nama room; query kosong cocok dengan semuanya. Tanggal cocok
// kalau date jatuh di dalam [start, end] inklusif; date nil cocok dengan
// semuanya. Keduanya digabung dengan AND.
func Filter(plannings []models.Planning, volunteers []models.Volunteer, rooms []models.Room, query string, date *time.Time, sortState SortState) []models.Planning {
	volunteerNames := make(map[uint]string, len(volunteers))
	for _, v := range volunteers {
		volunteerNames[v.ID] = strings.ToLower(v.FullName())
	}
	roomNames := make(map[uint]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = strings.ToLower(r.Name)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Planning, 0, len(plannings))
	for _, p := range plannings {
		if !matchesQuery(p, query, volunteerNames, roomNames) {
			continue
		}
		if date != nil && !ContainsDay(p, *date) {
			continue
		}
		result = append(result, p)
	}

	if sortState.Enabled {
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i], result[j]
			if !a.StartDate.Equal(b.StartDate) {
				if sortState.Descending {
					return a.StartDate.After(b.StartDate)
				}
				return a.StartDate.Before(b.StartDate)
			}
			// Tie-break pada end date, arah sama
			if sortState.Descending {
				return a.EndDate.After(b.EndDate)
			}
			return a.EndDate.Before(b.EndDate)
		})
	}

	return result
}

func matchesQuery(p models.Planning, query string, volunteerNames, roomNames map[uint]string) bool {
	if query == "" {
		return true
	}
	if p.VolunteerID != nil {
		if name, ok := volunteerNames[*p.VolunteerID]; ok && strings.Contains(name, query) {
			return true
		}
	}
	if p.RoomID != nil {
		if name, ok := roomNames[*p.RoomID]; ok && strings.Contains(name, query) {
			return true
		}
	}
	return false
}
