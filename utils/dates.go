package utils

import (
	"time"
)

// Format tanggal di seluruh API: granularity per hari, tanpa jam
const DateLayout = "2006-01-02"

// ParseDate membaca string "YYYY-MM-DD" menjadi tanggal (jam di-nol-kan)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate menulis tanggal sebagai "YYYY-MM-DD"
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDay membuang komponen jam dan menormalkan ke UTC. Tanggal bisa
// datang dari parse (UTC) maupun clock server (lokal); tanpa normalisasi,
// Before/After membandingkan instant tengah malam di zona berbeda.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today mengembalikan tanggal hari ini dengan jam di-nol-kan
func Today() time.Time {
	return TruncateToDay(time.Now())
}
