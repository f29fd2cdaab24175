package impl

import (
	"context"
	"log/slog"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

// conversationService implements the ConversationUsecase interface.
type conversationService struct {
	conversations repository.ConversationRepository
	logger        *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(
	conversations repository.ConversationRepository,
	logger *slog.Logger,
) usecase.ConversationUsecase {
	return &conversationService{
		conversations: conversations,
		logger:        logger,
	}
}

// ListConversations returns stored threads in insertion order. A non-empty
// fanID narrows the result to that fan's threads.
func (srv *conversationService) ListConversations(ctx context.Context, fanID string) ([]*entity.Conversation, error) {
	conversations, err := srv.conversations.List(ctx, fanID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

// CreateConversation stores a new message thread. The fan reference is
// not checked against the directory; orphaned threads are kept.
func (srv *conversationService) CreateConversation(ctx context.Context, input *usecase.CreateConversationInput) (*entity.Conversation, error) {
	srv.logger.Info("Creating conversation", "fanID", input.FanID, "messages", len(input.Messages))

	conversation := &entity.Conversation{
		FanID:    input.FanID,
		Messages: input.Messages,
	}

	created, err := srv.conversations.Create(ctx, conversation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	return created, nil
}
