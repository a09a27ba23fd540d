package analytics

import "github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"

type ProgressStatus string

const (
	ProgressOpen     ProgressStatus = "OPEN" // no projected sessions
	ProgressActive   ProgressStatus = "ACTIVE"
	ProgressRenew    ProgressStatus = "RENEW"
	ProgressComplete ProgressStatus = "COMPLETE"
	ProgressExceeded ProgressStatus = "EXCEEDED"
)

// PlanProgress summarizes how far an athlete is into a plan.
type PlanProgress struct {
	PlanID    string         `json:"planId"`
	Title     string         `json:"title"`
	Completed int            `json:"completed"`
	Projected *int           `json:"projected,omitempty"`
	Remaining *int           `json:"remaining,omitempty"`
	Status    ProgressStatus `json:"status"`
}

// ProgressFor computes the progress of one plan against the history.
// RENEW matches the window in which RenewalNotifications emits.
func ProgressFor(plan domain.Plan, history []domain.SessionLogEntry) PlanProgress {
	progress := PlanProgress{
		PlanID:    plan.ID,
		Title:     plan.Title,
		Completed: CompletedSessions(plan.ID, history),
		Status:    ProgressOpen,
	}
	if plan.ProjectedSessions == nil {
		return progress
	}

	projected := *plan.ProjectedSessions
	remaining := projected - progress.Completed
	progress.Projected = &projected
	progress.Remaining = &remaining

	switch {
	case remaining < 0:
		progress.Status = ProgressExceeded
	case remaining == 0:
		progress.Status = ProgressComplete
	case remaining <= RenewalThreshold:
		progress.Status = ProgressRenew
	default:
		progress.Status = ProgressActive
	}
	return progress
}

// ProgressForAll computes progress for every plan, in plan order.
func ProgressForAll(plans []domain.Plan, history []domain.SessionLogEntry) []PlanProgress {
	all := make([]PlanProgress, 0, len(plans))
	for _, plan := range plans {
		all = append(all, ProgressFor(plan, history))
	}
	return all
}
