// Package guardian serves the flagged-message view from static sample
// data. This is an explicit stub boundary: no classifier runs here, and
// none is implied by this scope.
package guardian

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"
)

type staticProvider struct {
	flags []*entity.FlaggedMessage
}

// NewStaticProvider is the constructor for the stub flag provider.
func NewStaticProvider() service.FlagProvider {
	now := time.Now()

	return &staticProvider{
		flags: []*entity.FlaggedMessage{
			{
				ID:        "flag_1",
				FanName:   "Emma Watson",
				Message:   "Can you give me your personal number? I'll pay extra.",
				Reason:    "Contact information request",
				Severity:  "medium",
				FlaggedAt: now.Add(-3 * time.Hour),
			},
			{
				ID:        "flag_2",
				FanName:   "Michelle Chen",
				Message:   "Where exactly do you live? I'm in the area next week.",
				Reason:    "Location probing",
				Severity:  "high",
				FlaggedAt: now.Add(-9 * time.Hour),
			},
			{
				ID:        "flag_3",
				FanName:   "Ashley Rodriguez",
				Message:   "Send me the uncensored version outside the platform.",
				Reason:    "Off-platform solicitation",
				Severity:  "low",
				FlaggedAt: now.Add(-26 * time.Hour),
			},
		},
	}
}

// ListFlags returns the static sample set.
func (p *staticProvider) ListFlags(ctx context.Context) ([]*entity.FlaggedMessage, error) {
	flags := make([]*entity.FlaggedMessage, len(p.flags))
	copy(flags, p.flags)

	return flags, nil
}
