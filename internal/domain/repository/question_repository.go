package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"
)

// ErrQuestionNotFound is returned when a question log entry is not found.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository defines the operations of the append-only question log.
type QuestionRepository interface {
	// List returns all logged questions ordered newest-first.
	List(ctx context.Context) ([]*entity.AiQuestion, error)

	// FindByID retrieves a single question log entry.
	FindByID(ctx context.Context, id string) (*entity.AiQuestion, error)

	// Create appends one entry to the log and returns the stored copy.
	Create(ctx context.Context, question *entity.AiQuestion) (*entity.AiQuestion, error)

	// Count returns the number of logged questions.
	Count(ctx context.Context) (int, error)
}
