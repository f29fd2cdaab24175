// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Fan is an end-user of the messaging platform being analyzed, not an
// operator of this dashboard. Fans are created at seed time or through the
// API, mutated in place via partial update, and never deleted.
type Fan struct {
	ID           string     `json:"id"`               // Opaque stable identifier ("fan_1" for seeds, uuid otherwise).
	Name         string     `json:"name"`             // Display name shown in the dashboard.
	Avatar       string     `json:"avatar,omitempty"` // Optional avatar image reference.
	MessageCount int        `json:"messageCount"`     // Total messages exchanged with this fan.
	PaidMessages int        `json:"paidMessages"`     // Paid subset of MessageCount (convention, not enforced).
	TotalAmount  string     `json:"totalAmount"`      // Lifetime spend as a 2-decimal currency string.
	LastActivity *time.Time `json:"lastActivity,omitempty"`
	Status       FanStatus  `json:"status"`
}

// UnknownHandle is echoed as the fan identity when a question carries no
// resolvable @handle token.
const UnknownHandle = "unknown"
