package memory

import (
	"context"
	"sort"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// questionRepository implements the append-only question log on the
// process store.
type questionRepository struct {
	store *Store
}

// NewQuestionRepository is the constructor for the question log adapter.
func NewQuestionRepository(store *Store) repository.QuestionRepository {
	return &questionRepository{store: store}
}

// List returns the log ordered newest-first.
func (r *questionRepository) List(ctx context.Context) ([]*entity.AiQuestion, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Walk insertion order backwards so that, among entries with equal
	// timestamps, the latest append still leads after the stable sort.
	questions := make([]*entity.AiQuestion, 0, len(r.store.questionOrder))
	for i := len(r.store.questionOrder) - 1; i >= 0; i-- {
		questions = append(questions, cloneQuestion(r.store.questions[r.store.questionOrder[i]]))
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].CreatedAt.After(questions[j].CreatedAt)
	})

	return questions, nil
}

// FindByID retrieves a single log entry.
func (r *questionRepository) FindByID(ctx context.Context, id string) (*entity.AiQuestion, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	question, ok := r.store.questions[id]
	if !ok {
		return nil, repository.ErrQuestionNotFound
	}

	return cloneQuestion(question), nil
}

// Create appends one entry to the log.
func (r *questionRepository) Create(ctx context.Context, question *entity.AiQuestion) (*entity.AiQuestion, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := cloneQuestion(question)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	if stored.Confidence == "" {
		stored.Confidence = "0.90"
	}

	r.store.questions[stored.ID] = stored
	r.store.questionOrder = append(r.store.questionOrder, stored.ID)

	return cloneQuestion(stored), nil
}

// Count returns the log length.
func (r *questionRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.questionOrder), nil
}
