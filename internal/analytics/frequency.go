package analytics

import (
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

// WeekWindow is the number of daily buckets in the frequency chart.
const WeekWindow = 7

// DayBucket is one day of the weekly frequency chart.
type DayBucket struct {
	Label string `json:"label"` // DD/MM/YYYY
	Count int    `json:"count"`
}

// WeeklyFrequency counts sessions per day for today and the six days before
// it, oldest first. Days are compared as calendar days in today's location.
func WeeklyFrequency(history []domain.SessionLogEntry, today time.Time) []DayBucket {
	loc := today.Location()
	first := startOfDay(today).AddDate(0, 0, -(WeekWindow - 1))

	buckets := make([]DayBucket, WeekWindow)
	index := make(map[string]int, WeekWindow)
	for i := range buckets {
		label := FormatDate(first.AddDate(0, 0, i))
		buckets[i].Label = label
		index[label] = i
	}

	for _, entry := range history {
		day, ok := entryDay(entry.Date, entry.Timestamp, loc)
		if !ok {
			continue
		}
		if i, ok := index[FormatDate(day)]; ok {
			buckets[i].Count++
		}
	}

	return buckets
}
