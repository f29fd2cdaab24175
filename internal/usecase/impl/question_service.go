package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

// questionService implements the QuestionUsecase interface.
type questionService struct {
	questions repository.QuestionRepository
	resolver  service.AnswerResolver
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(
	questions repository.QuestionRepository,
	resolver service.AnswerResolver,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.QuestionUsecase {
	return &questionService{
		questions: questions,
		resolver:  resolver,
		qrcode:    qrcode,
		logger:    logger,
	}
}

// Ask resolves a question and appends exactly one entry to the question
// log. Questions that are empty after trimming are rejected before any
// state changes, so a rejected submission leaves the log untouched.
func (srv *questionService) Ask(ctx context.Context, input *usecase.AskInput) (*usecase.AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "question is required")
	}

	srv.logger.Info("Resolving question", "origin", input.Origin, "agencyModel", input.AgencyModel)

	resolution, err := srv.resolver.Resolve(ctx, service.AnswerQuery{
		Question:    question,
		Fan:         input.Fan,
		AgencyModel: input.AgencyModel,
		Origin:      input.Origin,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve question")
	}

	entry := &entity.AiQuestion{
		Question:   question,
		FanID:      resolution.FanID,
		Response:   *resolution.Response,
		Confidence: strconv.FormatFloat(resolution.Response.Confidence, 'f', 2, 64),
		Context:    resolution.Response.Context,
	}

	logged, err := srv.questions.Create(ctx, entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to log question")
	}

	return &usecase.AskOutput{
		Question: logged,
		Result:   resolution.Result,
	}, nil
}

// ListQuestions returns the question log ordered newest-first.
func (srv *questionService) ListQuestions(ctx context.Context) ([]*entity.AiQuestion, error) {
	questions, err := srv.questions.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

// GetQuestion retrieves a single question log entry.
func (srv *questionService) GetQuestion(ctx context.Context, id string) (*entity.AiQuestion, error) {
	question, err := srv.questions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestionNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to find question")
	}

	return question, nil
}

// ShareQR renders the share QR code for an existing log entry.
func (srv *questionService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	if _, err := srv.GetQuestion(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateAnswerQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
