package domain

import "time"

// Session records the single authenticated user of the process. Absence of a
// session means the anonymous mode.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	StartedAt time.Time `json:"started_at"`
	LastSeen  time.Time `json:"last_seen"`
}
