package memory

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// conversationRepository implements repository.ConversationRepository on
// the process store.
type conversationRepository struct {
	store *Store
}

// NewConversationRepository is the constructor for the conversation store
// adapter.
func NewConversationRepository(store *Store) repository.ConversationRepository {
	return &conversationRepository{store: store}
}

// List returns conversations in insertion order, optionally filtered to a
// single fan.
func (r *conversationRepository) List(ctx context.Context, fanID string) ([]*entity.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var conversations []*entity.Conversation
	for _, id := range r.store.convOrder {
		conversation := r.store.conversations[id]
		if fanID != "" && conversation.FanID != fanID {
			continue
		}
		conversations = append(conversations, cloneConversation(conversation))
	}

	return conversations, nil
}

// Create inserts a new conversation with assigned ID and timestamp. The
// fan reference is deliberately not validated here (soft invariant).
func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneConversation(conversation)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.store.conversations[stored.ID] = stored
	r.store.convOrder = append(r.store.convOrder, stored.ID)

	return cloneConversation(stored), nil
}
