package domain

type SessionKind string

const (
	KindStrength SessionKind = "strength"
	KindRunning  SessionKind = "running"
)

// SessionLogEntry records one completed training session. Entries are
// appended to an athlete's history and never edited.
type SessionLogEntry struct {
	ID        string          `bson:"id" json:"id"`
	WorkoutID string          `bson:"workoutId,omitempty" json:"workoutId,omitempty"` // Originating plan, if any
	Name      string          `bson:"name" json:"name"`
	Duration  string          `bson:"duration" json:"duration"`   // e.g. "45:12"
	Date      string          `bson:"date" json:"date"`           // DD/MM/YYYY
	Timestamp int64           `bson:"timestamp" json:"timestamp"` // Unix millis
	PhotoKey  string          `bson:"photoKey,omitempty" json:"photoKey,omitempty"`
	Running   *RunningMetrics `bson:"running,omitempty" json:"running,omitempty"`
	Kind      SessionKind     `bson:"kind" json:"kind"`
}

type RunningMetrics struct {
	DistanceKm   float64 `bson:"distanceKm" json:"distanceKm"`
	Pace         string  `bson:"pace,omitempty" json:"pace,omitempty"` // min/km, e.g. "5:30"
	AvgHeartRate int     `bson:"avgHeartRate,omitempty" json:"avgHeartRate,omitempty"`
	Calories     int     `bson:"calories,omitempty" json:"calories,omitempty"`
}
