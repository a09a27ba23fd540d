package analytics

import (
	"strings"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used for session dates and chart labels.
const DateLayout = "02/01/2006"

// FormatDate renders t as DD/MM/YYYY in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DD/MM/YYYY string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// entryDay resolves the calendar day of a session: the stored date string
// when it parses, otherwise the timestamp seen from loc.
func entryDay(date string, timestampMillis int64, loc *time.Location) (time.Time, bool) {
	if day, ok := ParseDate(date, loc); ok {
		return day, true
	}
	if timestampMillis > 0 {
		return startOfDay(time.UnixMilli(timestampMillis).In(loc)), true
	}
	return time.Time{}, false
}
