// Package memory implements the store layer as explicitly constructed
// in-memory collections. Nothing here is durable: all state is lost on
// process restart, which is the documented scope of this service.
package memory

import (
	"log/slog"
	"strings"
	"sync"

	"atlas/config"
	"atlas/internal/domain/entity"
)

// Store owns every entity instance in the process. Repositories hand out
// copies, never internal pointers, so the delivery layer can not mutate
// store state behind the lock.
//
// Handlers run concurrently, so all access goes through one RWMutex.
type Store struct {
	mu sync.RWMutex

	fans     map[string]*entity.Fan
	fanOrder []string

	// handleIndex maps a normalized handle to a fan ID. Aliases are seeded
	// alongside the sample fans and can grow at runtime through
	// RegisterHandle.
	handleIndex map[string]string

	conversations map[string]*entity.Conversation
	convOrder     []string

	questions     map[string]*entity.AiQuestion
	questionOrder []string
}

// New constructs the process store, seeded with sample data when enabled.
func New(cfg *config.Config, logger *slog.Logger) *Store {
	store := &Store{}
	store.Reset()

	if cfg.Seed != nil && cfg.Seed.Enabled {
		store.seed()
		logger.Info("Seeded in-memory store",
			slog.Int("fans", len(store.fanOrder)),
			slog.Int("conversations", len(store.convOrder)),
			slog.Int("questions", len(store.questionOrder)),
		)
	}

	return store
}

// Reset drops all state. Tests use it to start from a clean store without
// constructing a new one.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fans = make(map[string]*entity.Fan)
	s.fanOrder = nil
	s.handleIndex = make(map[string]string)
	s.conversations = make(map[string]*entity.Conversation)
	s.convOrder = nil
	s.questions = make(map[string]*entity.AiQuestion)
	s.questionOrder = nil
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

func cloneFan(fan *entity.Fan) *entity.Fan {
	clone := *fan
	if fan.LastActivity != nil {
		lastActivity := *fan.LastActivity
		clone.LastActivity = &lastActivity
	}

	return &clone
}

func cloneMessages(messages []entity.ChatMessage) []entity.ChatMessage {
	if messages == nil {
		return nil
	}
	cloned := make([]entity.ChatMessage, len(messages))
	copy(cloned, messages)

	return cloned
}

func cloneConversation(conversation *entity.Conversation) *entity.Conversation {
	clone := *conversation
	clone.Messages = cloneMessages(conversation.Messages)

	return &clone
}

func cloneQuestion(question *entity.AiQuestion) *entity.AiQuestion {
	clone := *question
	clone.Context = cloneMessages(question.Context)
	clone.Response.Context = cloneMessages(question.Response.Context)
	if question.Response.FollowUpQuestions != nil {
		clone.Response.FollowUpQuestions = make([]string, len(question.Response.FollowUpQuestions))
		copy(clone.Response.FollowUpQuestions, question.Response.FollowUpQuestions)
	}

	return &clone
}
