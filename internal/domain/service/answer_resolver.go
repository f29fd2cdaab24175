// Package service declares the interfaces for infrastructure-backed
// domain services.
package service

import (
	"context"

	"atlas/internal/domain/entity"
)

// AnswerQuery is the input of one answer resolution.
type AnswerQuery struct {
	// Question is the free-text question. Callers must reject empty
	// questions before resolution; the resolver assumes non-empty input.
	Question string

	// Fan is an optional fallback handle used when the question itself
	// carries no @handle token.
	Fan string

	// AgencyModel is the talent/account context the answer pertains to.
	// Empty selects the configured default.
	AgencyModel string

	// Origin names the page that initiated the query; it is echoed into
	// the result for the cross-page handoff.
	Origin string
}

// Resolution is the outcome of one answer resolution: the handoff-shaped
// result plus the log-shaped response and the resolved fan reference.
type Resolution struct {
	Result   *entity.AnswerResult
	Response *entity.AiResponse
	FanID    string // Empty when no handle resolved.
}

// AnswerResolver turns a natural-language question into an answer plus a
// literal supporting snippet using deterministic rules. No live LLM sits
// behind this interface: the same input against the same directory state
// must always produce the same output.
type AnswerResolver interface {
	Resolve(ctx context.Context, query AnswerQuery) (*Resolution, error)
}
