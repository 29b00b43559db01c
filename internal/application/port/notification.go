package port

import (
	"context"
	"time"
)

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// NotificationID uniquely identifies a displayed notification.
type NotificationID string

// Action IDs used by download notices.
const (
	ActionCancel = "cancel"
	ActionShow   = "show"
	ActionOK     = "ok"
)

// NoticeAction is a button offered by a notice.
type NoticeAction struct {
	ID    string
	Label string
}

// Notice is a dismissible user alert.
type Notice struct {
	Title   string
	Message string
	Type    NotificationType
	Actions []NoticeAction
	// Timeout hides the notice automatically; zero keeps it until answered.
	Timeout time.Duration
}

// Notifier presents notices to the user.
type Notifier interface {
	// Show displays a notice. onResponse is called at most once with the chosen
	// action ID, or "" when the notice expires or is closed. It is never called
	// from within Show itself.
	Show(ctx context.Context, notice Notice, onResponse func(actionID string)) NotificationID

	// Dismiss hides a notice without calling its response callback.
	Dismiss(ctx context.Context, id NotificationID)
}
