package models

// Notification event types carried on the outbox topic.
const (
	EventOrderCreated    = "order_created"
	EventCustomerMessage = "customer_message"
)

// NotificationEvent is the payload published by the API and consumed by the
// notifier worker. Message is set only for customer_message events.
type NotificationEvent struct {
	Type    string `json:"type"`
	Order   Order  `json:"order"`
	Message string `json:"message,omitempty"`
}
