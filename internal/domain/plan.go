package domain

import "time"

type PlanStatus string

const (
	PlanDraft     PlanStatus = "draft"
	PlanPublished PlanStatus = "published"
)

// Plan is a coach-authored sequence of movements assigned to one athlete.
type Plan struct {
	ID    string     `bson:"id" json:"id"`
	Title string     `bson:"title" json:"title"`
	Items []PlanItem `bson:"items" json:"items"`
	// ProjectedSessions is the total number of sessions the plan is valid for.
	// Nil means the plan has no renewal target.
	ProjectedSessions *int       `bson:"projectedSessions,omitempty" json:"projectedSessions,omitempty"`
	Status            PlanStatus `bson:"status" json:"status"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
}

func (p *Plan) IsPublished() bool {
	return p.Status == PlanPublished
}

// PlanItem is one prescribed movement of a plan.
type PlanItem struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps string `bson:"reps" json:"reps"` // e.g. "10-12"
	Rest string `bson:"rest,omitempty" json:"rest,omitempty"`
	Load string `bson:"load,omitempty" json:"load,omitempty"`
}
