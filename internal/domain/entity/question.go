package entity

import "time"

// AiResponse is the value object produced by the answer resolver. It is
// embedded in the question log entry and never persisted on its own.
type AiResponse struct {
	Answer            string        `json:"answer"`
	Confidence        float64       `json:"confidence"` // 0..1
	Context           []ChatMessage `json:"context"`
	FollowUpQuestions []string      `json:"followUpQuestions"`
}

// AiQuestion is one entry of the append-only question log: a free-text
// question together with its resolved response. Entries are never mutated
// or deleted.
type AiQuestion struct {
	ID         string        `json:"id"`
	Question   string        `json:"question"`
	FanID      string        `json:"fanId,omitempty"` // Empty means the question was not fan-scoped.
	Response   AiResponse    `json:"response"`
	Confidence string        `json:"confidence"` // Decimal string 0..1, mirrors Response.Confidence.
	Context    []ChatMessage `json:"context"`
	CreatedAt  time.Time     `json:"createdAt"`
}
