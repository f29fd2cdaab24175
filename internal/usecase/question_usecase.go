package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// AskInput is one question submission. Fan and AgencyModel are optional
// hints; an @handle inside Question takes precedence over Fan.
type AskInput struct {
	Question    string `json:"question" validate:"required"`
	Fan         string `json:"fan"`
	AgencyModel string `json:"agencyModel"`
	Origin      string `json:"origin"`
}

// AskOutput pairs the logged entry with the resolved result so callers
// can both render the answer and link to the log record.
type AskOutput struct {
	Question *entity.AiQuestion   `json:"question"`
	Result   *entity.AnswerResult `json:"result"`
}

// QuestionUsecase resolves questions against conversation history and
// maintains the append-only question log.
type QuestionUsecase interface {
	// Ask resolves the question and appends exactly one log entry,
	// whether or not a fan was matched.
	Ask(ctx context.Context, input *AskInput) (*AskOutput, error)

	ListQuestions(ctx context.Context) ([]*entity.AiQuestion, error)
	GetQuestion(ctx context.Context, id string) (*entity.AiQuestion, error)

	// ShareQR renders a QR code image linking to the answer page for a
	// logged question.
	ShareQR(ctx context.Context, id string) ([]byte, error)
}
