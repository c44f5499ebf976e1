package scheduling

import (
	"sort"
	"time"

	"github.com/RachidAzrou/mefen/models"
	"github.com/RachidAzrou/mefen/utils"
)

// DaySchedule memetakan room id -> daftar planning yang aktif pada hari itu.
// Planning tanpa room (referensi sudah terhapus) dikelompokkan di key 0.
// Room tanpa planning sama sekali tidak muncul di map.
type DaySchedule map[uint][]models.Planning

// WeekStart menormalkan tanggal apa pun ke hari Senin dari minggu ISO-nya
func WeekStart(t time.Time) time.Time {
	t = utils.TruncateToDay(t)
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Minggu
	}
	return t.AddDate(0, 0, -(wd - 1))
}

// BuildWeek menyusun view kalender mingguan: untuk setiap hari dari Senin
// sampai Minggu, pilih planning yang rentangnya memuat hari itu, kelompokkan
// per room, dan urutkan responsible volunteer paling depan (stable, tanpa
// jaminan urutan lain di dalam grup).
func BuildWeek(weekStart time.Time, plannings []models.Planning) map[string]DaySchedule {
	monday := WeekStart(weekStart)

	week := make(map[string]DaySchedule, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		schedule := make(DaySchedule)

		for _, p := range plannings {
			if !ContainsDay(p, day) {
				continue
			}
			roomID := uint(0)
			if p.RoomID != nil {
				roomID = *p.RoomID
			}
			schedule[roomID] = append(schedule[roomID], p)
		}

		for roomID := range schedule {
			group := schedule[roomID]
			sort.SliceStable(group, func(i, j int) bool {
				return group[i].IsResponsible && !group[j].IsResponsible
			})
			schedule[roomID] = group
		}

		week[utils.FormatDate(day)] = schedule
	}

	return week
}
