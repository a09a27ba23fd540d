package analytics

import (
	"fmt"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
)

// RenewalThreshold is the low-water mark of remaining sessions at which a
// plan renewal advisory is raised.
const RenewalThreshold = 2

const renewalTitle = "Renovação de plano"

// CompletedSessions counts the history entries logged against planID.
func CompletedSessions(planID string, history []domain.SessionLogEntry) int {
	completed := 0
	for _, entry := range history {
		if entry.WorkoutID == planID {
			completed++
		}
	}
	return completed
}

// RenewalNotifications derives one renewal notification for every plan that
// declares projected sessions and has between 0 and RenewalThreshold
// sessions left. now only supplies the notification date.
func RenewalNotifications(plans []domain.Plan, history []domain.SessionLogEntry, now time.Time) []domain.Notification {
	notifications := []domain.Notification{}
	for _, plan := range plans {
		if plan.ProjectedSessions == nil {
			continue
		}
		remaining := *plan.ProjectedSessions - CompletedSessions(plan.ID, history)
		if remaining < 0 || remaining > RenewalThreshold {
			continue
		}
		notifications = append(notifications, domain.Notification{
			ID:      "renewal-" + plan.ID,
			Title:   renewalTitle,
			Message: renewalMessage(remaining, plan.Title),
			Date:    FormatDate(now),
			Kind:    domain.NotificationRenewal,
		})
	}
	return notifications
}

func renewalMessage(remaining int, title string) string {
	if remaining == 1 {
		return fmt.Sprintf("Resta %d sessão do plano \"%s\". Hora de renovar!", remaining, title)
	}
	return fmt.Sprintf("Restam %d sessões do plano \"%s\". Hora de renovar!", remaining, title)
}
