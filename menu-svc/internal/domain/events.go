package domain

import "time"

type EventType string

const (
	EventCreated     EventType = "created"
	EventUpdated     EventType = "updated"
	EventDeleted     EventType = "deleted"
	EventActivated   EventType = "activated"
	EventRegenerated EventType = "regenerated"
)

const (
	EntityCategory  = "category"
	EntityMenuItem  = "menu_item"
	EntityMenuTheme = "menu_theme"
	EntityQRCode    = "qr_code"
)

// MenuEvent tells the customer-facing menu that something it renders changed.
type MenuEvent struct {
	Type      EventType `json:"type"`
	Entity    string    `json:"entity"`
	EntityID  int       `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}
