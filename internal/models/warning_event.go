package models

import "time"

// WarningEvent is a journaled warning, tagged with the request that raised it.
type WarningEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   string    `json:"request_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // one of the Warning* kinds
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
