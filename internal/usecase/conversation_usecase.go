package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// CreateConversationInput carries a new message thread. FanID is not
// required to reference a known fan; threads for departed fans keep
// their history.
type CreateConversationInput struct {
	FanID    string               `json:"fanId" validate:"required"`
	Messages []entity.ChatMessage `json:"messages"`
}

// ConversationUsecase manages stored message threads.
type ConversationUsecase interface {
	// ListConversations returns threads in insertion order, optionally
	// filtered to a single fan.
	ListConversations(ctx context.Context, fanID string) ([]*entity.Conversation, error)
	CreateConversation(ctx context.Context, input *CreateConversationInput) (*entity.Conversation, error)
}
