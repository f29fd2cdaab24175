// Package answer implements the deterministic mock answer resolver. It
// performs no inference: answers come from static scenario tables and a
// generic fallback pool, selected by rules that are pure functions of the
// input and the fan directory state.
package answer

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"

	"github.com/pkg/errors"
)

// handlePattern extracts the first @handle token from a question.
var handlePattern = regexp.MustCompile(`@(\w+)`)

type resolver struct {
	fans         repository.FanRepository
	latency      time.Duration
	defaultModel string
	logger       *slog.Logger
}

// NewResolver is the constructor for the mock resolver service.
func NewResolver(cfg *config.Config, fans repository.FanRepository, logger *slog.Logger) service.AnswerResolver {
	r := &resolver{
		fans:         fans,
		defaultModel: defaultModelKey,
		logger:       logger,
	}
	if cfg.Resolver != nil {
		r.latency = cfg.Resolver.SimulatedLatency
		if cfg.Resolver.DefaultModel != "" {
			r.defaultModel = cfg.Resolver.DefaultModel
		}
	}

	return r
}

// Resolve runs the resolution pipeline: handle extraction, directory
// lookup, scenario or stats answer, deterministic generic fallback.
func (r *resolver) Resolve(ctx context.Context, query service.AnswerQuery) (*service.Resolution, error) {
	if err := r.simulateLatency(ctx); err != nil {
		return nil, err
	}

	model := query.AgencyModel
	if model == "" {
		model = r.defaultModel
	}

	// The handle is echoed exactly as typed; only the lookup normalizes.
	handle := extractHandle(query.Question)
	if handle == "" {
		handle = strings.TrimSpace(query.Fan)
	}

	if handle != "" {
		fan, err := r.fans.FindByHandle(ctx, handle)
		switch {
		case err == nil:
			return r.resolveFan(handle, model, fan, query.Origin), nil
		case !errors.Is(err, repository.ErrFanNotFound):
			return nil, errors.Wrap(err, "failed to resolve handle")
		}
	}

	return r.resolveGeneric(handle, model, query.Question, query.Origin), nil
}

func (r *resolver) simulateLatency(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(r.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

// resolveFan builds a response scoped to a directory fan: the scenario
// narrative when one exists, otherwise a summary of the fan's stats.
func (r *resolver) resolveFan(handle, model string, fan *entity.Fan, origin string) *service.Resolution {
	if sc, ok := lookupScenario(model, strings.ToLower(handle)); ok {
		r.logger.Debug("Resolved question against scenario table", "handle", handle, "model", model)

		return &service.Resolution{
			Result: resultFrom(sc.answer, sc.snippet, entity.FanIdentity{
				Username:         handle,
				DisplayName:      sc.displayName,
				Age:              sc.age,
				PlatformUsername: sc.platformUsername,
			}, model, origin),
			Response: &entity.AiResponse{
				Answer:            sc.answer,
				Confidence:        sc.confidence,
				Context:           contextFromSnippet(sc.snippet, fan.Name),
				FollowUpQuestions: sc.followUps,
			},
			FanID: fan.ID,
		}
	}

	answerText := fmt.Sprintf(
		"Based on conversations with %s, I found relevant information about your query. The fan has %d messages and has spent $%s.",
		fan.Name, fan.MessageCount, fan.TotalAmount,
	)
	r.logger.Debug("Resolved question against fan stats", "handle", handle, "fanID", fan.ID)

	return &service.Resolution{
		Result: resultFrom(answerText, sharedFanSnippet, entity.FanIdentity{
			Username:    handle,
			DisplayName: fan.Name,
		}, model, origin),
		Response: &entity.AiResponse{
			Answer:     answerText,
			Confidence: 0.92,
			Context:    contextFromSnippet(sharedFanSnippet, fan.Name),
			FollowUpQuestions: []string{
				fmt.Sprintf("What other topics did you discuss with %s?", fan.Name),
				"What other restaurants were mentioned this week?",
			},
		},
		FanID: fan.ID,
	}
}

// resolveGeneric serves questions that target no directory fan. The pool
// entry is chosen by a stable hash of the question so repeated questions
// repeat their answers.
func (r *resolver) resolveGeneric(handle, model, question, origin string) *service.Resolution {
	entry := genericPool[poolIndex(question)]

	username := handle
	if username == "" {
		username = entity.UnknownHandle
	}
	r.logger.Debug("Resolved question from generic pool", "handle", username)

	return &service.Resolution{
		Result: resultFrom(entry.answer, entry.snippet, entity.FanIdentity{
			Username:    username,
			DisplayName: username,
		}, model, origin),
		Response: &entity.AiResponse{
			Answer:            entry.answer,
			Confidence:        entry.confidence,
			Context:           cloneContext(entry.context),
			FollowUpQuestions: entry.followUps,
		},
	}
}

func resultFrom(answerText string, snippet []entity.SnippetMessage, fan entity.FanIdentity, model, origin string) *entity.AnswerResult {
	cloned := make([]entity.SnippetMessage, len(snippet))
	copy(cloned, snippet)

	return &entity.AnswerResult{
		Answer:  answerText,
		Snippet: cloned,
		Fan:     fan,
		Model:   entity.ModelIdentity{Name: model},
		Origin:  origin,
	}
}

// contextFromSnippet converts snippet lines into sender/message pairs for
// the question log, attributing model lines to the operator.
func contextFromSnippet(snippet []entity.SnippetMessage, fanName string) []entity.ChatMessage {
	messages := make([]entity.ChatMessage, 0, len(snippet))
	for _, line := range snippet {
		sender := fanName
		if line.Speaker == entity.SpeakerModel {
			sender = "You"
		}
		messages = append(messages, entity.ChatMessage{Sender: sender, Message: line.Text})
	}

	return messages
}

func cloneContext(messages []entity.ChatMessage) []entity.ChatMessage {
	cloned := make([]entity.ChatMessage, len(messages))
	copy(cloned, messages)

	return cloned
}

// poolIndex maps a question deterministically onto the generic pool.
func poolIndex(question string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(question))))

	return int(h.Sum32() % uint32(len(genericPool)))
}

// extractHandle returns the first @handle token as typed, or "".
func extractHandle(question string) string {
	match := handlePattern.FindStringSubmatch(question)
	if match == nil {
		return ""
	}

	return match[1]
}
