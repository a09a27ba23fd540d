package domain

import "time"

// Athlete is one document of the athletes collection. Plans, history and
// analytics are embedded so a single snapshot carries everything the
// aggregation functions need.
type Athlete struct {
	ID        string            `bson:"_id" json:"id"`
	Name      string            `bson:"name" json:"name"`
	Email     string            `bson:"email,omitempty" json:"email,omitempty"`
	Plans     []Plan            `bson:"plans,omitempty" json:"plans"`
	History   []SessionLogEntry `bson:"history,omitempty" json:"history"`
	Analytics AnalyticsSummary  `bson:"analytics" json:"analytics"`

	// Optional profile fields
	Phone     string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Goal      string  `bson:"goal,omitempty" json:"goal,omitempty"`
	BirthDate string  `bson:"birthDate,omitempty" json:"birthDate,omitempty"` // DD/MM/YYYY
	WeightKg  float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCm  float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PlanByID returns the athlete's plan with the given id.
func (a *Athlete) PlanByID(id string) (*Plan, bool) {
	for i := range a.Plans {
		if a.Plans[i].ID == id {
			return &a.Plans[i], true
		}
	}
	return nil, false
}
