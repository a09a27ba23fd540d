package analytics

import "github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"

// ExerciseOutcome is the result of one exercise within a finished session.
type ExerciseOutcome struct {
	Name          string `json:"name"`
	CompletedSets int    `json:"completedSets"`
	SkippedSets   int    `json:"skippedSets"`
}

// OutcomeFromSets counts done and skipped sets, one flag per set.
func OutcomeFromSets(name string, done []bool) ExerciseOutcome {
	outcome := ExerciseOutcome{Name: name}
	for _, d := range done {
		if d {
			outcome.CompletedSets++
		} else {
			outcome.SkippedSets++
		}
	}
	return outcome
}

// ApplySession returns a copy of summary with the session's outcomes added
// and the session counted. summary itself is left untouched.
func ApplySession(summary domain.AnalyticsSummary, outcomes []ExerciseOutcome) domain.AnalyticsSummary {
	exercises := make(map[string]domain.ExerciseCounter, len(summary.Exercises)+len(outcomes))
	for name, counter := range summary.Exercises {
		exercises[name] = counter
	}

	for _, o := range outcomes {
		if o.Name == "" {
			continue
		}
		counter := exercises[o.Name]
		counter.Completed += max(o.CompletedSets, 0)
		counter.Skipped += max(o.SkippedSets, 0)
		exercises[o.Name] = counter
	}

	return domain.AnalyticsSummary{
		Exercises:     exercises,
		TotalSessions: summary.TotalSessions + 1,
		Streak:        summary.Streak,
	}
}
