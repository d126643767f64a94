package constants

// Message bus topics (topic-per-channel).
const (
	TopicSMSNotification   = "SMS_NOTIFICATION"
	TopicEmailNotification = "EMAIL_NOTIFICATION"
)
