package models

// Notification event types and subtypes understood by the notification
// service on the other side of the bus.
const (
	NotificationTypeSMS   = "sms_notification"
	NotificationTypeEmail = "email_notification"

	NotificationSubtypeOTP         = "otp"
	NotificationSubtypePinChange   = "pin_change"
	NotificationSubtypePhoneChange = "phone_change"
)

// NotificationMeta classifies an event for routing on the consumer side.
type NotificationMeta struct {
	Entity  string `json:"entity"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// NotificationEvent is the envelope published to the message bus. Delivery
// is best-effort at-least-once; there is no synchronous receipt.
type NotificationEvent struct {
	ServiceName string            `json:"service_name"`
	Meta        NotificationMeta  `json:"meta"`
	Details     map[string]string `json:"details"`
	Recipients  []string          `json:"recipients"`
}
