package service

import (
	"context"

	"atlas/internal/domain/entity"
)

// FlagProvider supplies the Guardian flagged-message view. The only
// implementation in this scope is a static stub; this boundary exists so
// the mock is explicit and a real classifier could replace it.
type FlagProvider interface {
	ListFlags(ctx context.Context) ([]*entity.FlaggedMessage, error)
}
