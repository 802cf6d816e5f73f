package domain

import "time"

// Instance is the singleton identity of one server installation, minted on
// first boot and reported by the root endpoint so client fleets can tell
// environments apart.
type Instance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}
