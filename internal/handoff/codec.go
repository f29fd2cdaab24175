// Package handoff encodes answer results into URL query parameters for
// the cross-page result handoff. The query-string channel mirrors the
// one-shot exchange: both carry the same payload, and a results page that
// fails to decode must redirect to the entry page instead of rendering a
// broken state.
package handoff

import (
	"encoding/json"
	"net/url"

	"atlas/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	paramFan     = "fan"
	paramModel   = "model"
	paramAnswer  = "answer"
	paramSnippet = "snippet"
	paramOrigin  = "origin"
)

// ErrIncompletePayload is returned when any required parameter is absent.
var ErrIncompletePayload = errors.New("handoff payload incomplete")

// Encode serializes a result into query parameters. The snippet travels
// as one JSON-encoded parameter; fan identity is reduced to the handle,
// which is all the results page echoes.
func Encode(result *entity.AnswerResult) (url.Values, error) {
	snippetJSON, err := json.Marshal(result.Snippet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snippet")
	}

	values := url.Values{}
	values.Set(paramFan, result.Fan.Username)
	values.Set(paramModel, result.Model.Name)
	values.Set(paramAnswer, result.Answer)
	values.Set(paramSnippet, string(snippetJSON))
	if result.Origin != "" {
		values.Set(paramOrigin, result.Origin)
	}

	return values, nil
}

// Decode rebuilds a result from query parameters. Absent or malformed
// payloads are errors; callers redirect rather than render.
func Decode(values url.Values) (*entity.AnswerResult, error) {
	fan := values.Get(paramFan)
	model := values.Get(paramModel)
	answerText := values.Get(paramAnswer)
	snippetJSON := values.Get(paramSnippet)

	if fan == "" || model == "" || answerText == "" || snippetJSON == "" {
		return nil, errors.WithStack(ErrIncompletePayload)
	}

	var snippet []entity.SnippetMessage
	if err := json.Unmarshal([]byte(snippetJSON), &snippet); err != nil {
		return nil, errors.Wrap(err, "failed to decode snippet")
	}

	return &entity.AnswerResult{
		Answer:  answerText,
		Snippet: snippet,
		Fan:     entity.FanIdentity{Username: fan},
		Model:   entity.ModelIdentity{Name: model},
		Origin:  values.Get(paramOrigin),
	}, nil
}
