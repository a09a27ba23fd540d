package analytics

import (
	"sort"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

const (
	// TopExercisesLimit caps the engagement chart.
	TopExercisesLimit = 6
	displayNameLimit  = 12
	ellipsis          = "..."
)

// ExerciseEngagement is one bar of the engagement chart.
type ExerciseEngagement struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Completed   int    `json:"completed"`
	Skipped     int    `json:"skipped"`
}

// SkipShare is an exercise with at least one skipped set and the share of
// its sets that were skipped.
type SkipShare struct {
	ExerciseEngagement
	Ratio float64 `json:"ratio"`
}

// TopExercises lists the most completed exercises, most completed first,
// truncated to TopExercisesLimit. Ties are ordered by name so the result is
// stable across map iteration orders.
func TopExercises(summary domain.AnalyticsSummary) []ExerciseEngagement {
	list := make([]ExerciseEngagement, 0, len(summary.Exercises))
	for name, counter := range summary.Exercises {
		list = append(list, ExerciseEngagement{
			Name:        name,
			DisplayName: ShortName(name),
			Completed:   counter.Completed,
			Skipped:     counter.Skipped,
		})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Completed != list[j].Completed {
			return list[i].Completed > list[j].Completed
		}
		return list[i].Name < list[j].Name
	})

	if len(list) > TopExercisesLimit {
		list = list[:TopExercisesLimit]
	}
	return list
}

// SkipBreakdown keeps the entries with skipped sets and computes
// skipped / (completed + skipped) for each.
func SkipBreakdown(list []ExerciseEngagement) []SkipShare {
	shares := []SkipShare{}
	for _, e := range list {
		if e.Skipped <= 0 {
			continue
		}
		total := e.Completed + e.Skipped
		if total == 0 {
			total = 1
		}
		shares = append(shares, SkipShare{
			ExerciseEngagement: e,
			Ratio:              float64(e.Skipped) / float64(total),
		})
	}
	return shares
}

// ShortName shortens names longer than 12 characters for chart labels.
func ShortName(name string) string {
	runes := []rune(name)
	if len(runes) <= displayNameLimit {
		return name
	}
	return string(runes[:displayNameLimit]) + ellipsis
}
