package analytics

import (
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

// Streak returns the number of consecutive days with at least one session,
// ending today or, if nothing was logged today yet, yesterday.
func Streak(history []domain.SessionLogEntry, today time.Time) int {
	loc := today.Location()
	days := make(map[string]struct{}, len(history))
	for _, entry := range history {
		if day, ok := entryDay(entry.Date, entry.Timestamp, loc); ok {
			days[FormatDate(day)] = struct{}{}
		}
	}

	cursor := startOfDay(today)
	if _, ok := days[FormatDate(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[FormatDate(cursor)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
