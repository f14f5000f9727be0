package models

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification is a transient, non-blocking message shown to the user.
type Notification struct {
	Level       NotificationLevel
	Title       string
	Description string
}

// String renders the notification as a single status line.
func (n Notification) String() string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + ": " + n.Description
}
