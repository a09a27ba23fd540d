package domain

// AnalyticsSummary holds per-athlete counters derived from session history.
type AnalyticsSummary struct {
	Exercises     map[string]ExerciseCounter `bson:"exercises,omitempty" json:"exercises"`
	TotalSessions int                        `bson:"totalSessions" json:"totalSessions"`
	Streak        int                        `bson:"streak" json:"streak"`
}

type ExerciseCounter struct {
	Completed int `bson:"completed" json:"completed"`
	Skipped   int `bson:"skipped" json:"skipped"`
}
