package entity

import "time"

// Notification is a provider callback reduced to what settlement needs
type Notification struct {
	Provider          ProviderName
	EventKey          string // unique per provider, used to drop redeliveries
	Reference         string // merchant reference, when the provider echoes it
	ProviderReference string
	Status            TransactionStatus
	Amount            int64 // minor units; 0 when the provider did not send one
	Currency          Currency
	Reason            string
	Raw               map[string]any
	ReceivedAt        time.Time
}

// WebhookEvent is the persisted form of a received notification
type WebhookEvent struct {
	ID         uint64
	Provider   ProviderName
	EventKey   string
	Reference  string
	Status     TransactionStatus
	Payload    map[string]any
	ReceivedAt time.Time
}
