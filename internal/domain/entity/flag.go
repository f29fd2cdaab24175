package entity

import "time"

// FlaggedMessage is one row of the Guardian moderation view. The data
// behind it is a static stub; no classifier exists in this scope.
type FlaggedMessage struct {
	ID        string    `json:"id"`
	FanName   string    `json:"fanName"`
	Message   string    `json:"message"`
	Reason    string    `json:"reason"`
	Severity  string    `json:"severity"`
	FlaggedAt time.Time `json:"flaggedAt"`
}
