package entity

import "time"

// ChatMessage is a single exchange inside a conversation or an answer
// context. Sender is a display name ("You" for the operator side).
type ChatMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Conversation is an ordered message thread belonging to one fan.
// Conversations are immutable after creation; there is no append operation.
type Conversation struct {
	ID        string        `json:"id"`
	FanID     string        `json:"fanId"` // Soft reference: existence of the fan is schema intent, not store-enforced.
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"createdAt"`
}
