package models

import "time"

// TimerRecord is a persisted active timer. The preset is referenced by its
// catalog id and the physics are recomputed on load.
type TimerRecord struct {
	ID         string    `json:"id"`
	UserID     int       `json:"user_id"`
	PresetID   string    `json:"preset_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishesAt time.Time `json:"finishes_at"`
}
