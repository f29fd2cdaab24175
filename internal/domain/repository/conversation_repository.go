package repository

import (
	"context"

	"atlas/internal/domain/entity"
)

// ConversationRepository defines the operations of the conversation store.
type ConversationRepository interface {
	// List returns conversations in insertion order, filtered to one fan
	// when fanID is non-empty.
	List(ctx context.Context, fanID string) ([]*entity.Conversation, error)

	// Create assigns an ID and creation timestamp, inserts, and returns
	// the stored conversation. The fanID reference is not validated; its
	// integrity is schema intent only.
	Create(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)
}
