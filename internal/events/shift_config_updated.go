package events

import "time"

const ShiftConfigUpdatedTopic = "portal.shift-config.updated.v1"

type ShiftConfigUpdatedEvent struct {
	EventType  string    `json:"event_type"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Timezone   string    `json:"timezone"`
	UpdatedBy  string    `json:"updated_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
