package entity

import "time"

// Challenge is a pending invitation from one lobby player to another.
type Challenge struct {
	ChallengerID string    `json:"challenger_id"`
	OpponentID   string    `json:"opponent_id"`
	CreatedAt    time.Time `json:"created_at"`
}
