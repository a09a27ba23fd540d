package domain

type NotificationKind string

const (
	NotificationRenewal NotificationKind = "renewal"
	NotificationSystem  NotificationKind = "system"
	NotificationWorkout NotificationKind = "workout"
)

// Notification is derived on demand from athlete state and is never stored.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"` // DD/MM/YYYY
	Read    bool             `json:"read"`
	Kind    NotificationKind `json:"kind"`
}
