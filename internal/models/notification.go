package models

// Severity grades a notification event.
type Severity string

// Possible severities.
const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is the structured event an action produces. The core never
// delivers it; the consuming shell decides how to surface it.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// SuccessNotification builds a success event.
func SuccessNotification(title, message string) Notification {
	return Notification{Title: title, Message: message, Severity: SeveritySuccess}
}

// FailureNotification builds the event mirroring a rejected action.
func FailureNotification(message string) Notification {
	return Notification{Title: "Action Failed", Message: message, Severity: SeverityError}
}
