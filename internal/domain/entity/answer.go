package entity

// Speaker identifies which side of a conversation a snippet line belongs to.
type Speaker string

const (
	// SpeakerFan marks a line written by the fan.
	SpeakerFan Speaker = "fan"
	// SpeakerModel marks a line written on behalf of the agency model.
	SpeakerModel Speaker = "model"
)

// SnippetMessage is one literal line of evidence supporting an answer.
type SnippetMessage struct {
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp,omitempty"`
}

// FanIdentity is the fan echo of an answer result. Username carries the
// @handle exactly as typed in the question.
type FanIdentity struct {
	Username         string `json:"username"`
	DisplayName      string `json:"displayName"`
	Age              int    `json:"age,omitempty"`
	PlatformUsername string `json:"platformUsername,omitempty"`
}

// ModelIdentity names the agency model context an answer pertains to.
// This is a talent/account label, unrelated to any machine-learning model.
type ModelIdentity struct {
	Name string `json:"name"`
}

// AnswerResult is the full resolution payload handed across pages: the
// answer, its supporting snippet, the echoed fan and model identities, and
// an origin flag naming the page that initiated the query.
type AnswerResult struct {
	Answer  string           `json:"answer"`
	Snippet []SnippetMessage `json:"snippet"`
	Fan     FanIdentity      `json:"fan"`
	Model   ModelIdentity    `json:"model"`
	Origin  string           `json:"origin,omitempty"`
}
