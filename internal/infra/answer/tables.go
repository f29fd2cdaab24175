package answer

import "atlas/internal/domain/entity"

// scenario is one canned, fan-scoped narrative with its literal evidence.
type scenario struct {
	answer           string
	confidence       float64
	snippet          []entity.SnippetMessage
	displayName      string
	age              int
	platformUsername string
	followUps        []string
}

// defaultModelKey is the scenario table consulted when the requested
// agency model has none of its own.
const defaultModelKey = "default"

// scenarios maps agency model -> normalized handle -> canned narrative.
// The tables stay static so every resolution is reproducible.
var scenarios = map[string]map[string]scenario{
	"sophia_lee": {
		"tina": {
			answer: "Based on the conversation with Tina, you discussed having Italian food at a new " +
				"restaurant downtown yesterday. She mentioned going there for dinner and seemed excited " +
				"about trying their pasta dishes, specifically the carbonara.",
			confidence: 0.92,
			snippet: []entity.SnippetMessage{
				{Speaker: entity.SpeakerFan, Text: "Yesterday we had Italian food at that new restaurant downtown!", Timestamp: "2:30 PM"},
				{Speaker: entity.SpeakerModel, Text: "That sounds delicious! What did you order?", Timestamp: "2:31 PM"},
				{Speaker: entity.SpeakerFan, Text: "I got the carbonara and it was amazing! The sauce was so creamy.", Timestamp: "2:33 PM"},
			},
			displayName:      "Christina",
			age:              28,
			platformUsername: "christina_xoxo",
			followUps: []string{
				"What specific Italian dishes were mentioned?",
				"Which restaurants were recommended?",
			},
		},
		"jessica": {
			answer: "Jessica mentioned receiving a luxury Cartier watch as a birthday gift from her " +
				"boyfriend. She was very excited about it and had wanted one for a long time.",
			confidence: 0.95,
			snippet: []entity.SnippetMessage{
				{Speaker: entity.SpeakerFan, Text: "My boyfriend got me this beautiful watch for my birthday!", Timestamp: "Yesterday 3:15 PM"},
				{Speaker: entity.SpeakerModel, Text: "That's wonderful! It looks really elegant. What brand is it?", Timestamp: "Yesterday 3:16 PM"},
				{Speaker: entity.SpeakerFan, Text: "It's a Cartier! I've wanted one for so long.", Timestamp: "Yesterday 3:18 PM"},
			},
			displayName:      "Jessica",
			age:              32,
			platformUsername: "jess_luxe",
			followUps: []string{
				"What other gifts were mentioned?",
				"What brands were discussed?",
			},
		},
	},
	defaultModelKey: {
		"sarah": {
			answer: "Based on available conversations, I found a discussion about weekend activities " +
				"and travel plans with this fan.",
			confidence: 0.85,
			snippet: []entity.SnippetMessage{
				{Speaker: entity.SpeakerFan, Text: "I'm planning this amazing weekend trip to Malibu!", Timestamp: "Today 10:15 AM"},
				{Speaker: entity.SpeakerModel, Text: "That sounds incredible! What activities are you planning?", Timestamp: "Today 10:16 AM"},
				{Speaker: entity.SpeakerFan, Text: "Definitely want to try surfing for the first time. The ocean views there are supposed to be breathtaking!", Timestamp: "Today 10:18 AM"},
			},
			displayName:      "Sarah",
			age:              26,
			platformUsername: "sarahlive",
			followUps: []string{
				"What other activities were discussed?",
				"What travel destinations were mentioned this week?",
			},
		},
	},
}

// lookupScenario consults the requested model's table first, then the
// shared default table.
func lookupScenario(model, handle string) (scenario, bool) {
	if table, ok := scenarios[model]; ok {
		if sc, ok := table[handle]; ok {
			return sc, true
		}
	}
	sc, ok := scenarios[defaultModelKey][handle]

	return sc, ok
}

// generic is one entry of the fallback pool for questions that target no
// resolvable fan.
type generic struct {
	answer     string
	confidence float64
	snippet    []entity.SnippetMessage
	context    []entity.ChatMessage
	followUps  []string
}

// genericPool covers the recurring question topics (food, gifts,
// activities). Selection is a pure function of the question text.
var genericPool = []generic{
	{
		answer: "Based on recent conversations, fans mentioned several food discussions including " +
			"Italian cuisine and dinner plans at new restaurants.",
		confidence: 0.88,
		snippet: []entity.SnippetMessage{
			{Speaker: entity.SpeakerFan, Text: "Yes! We're going to that new Italian place downtown"},
			{Speaker: entity.SpeakerFan, Text: "I love pasta, especially carbonara!"},
		},
		context: []entity.ChatMessage{
			{Sender: "TINA ❤️ LOVE", Message: "Yes! We're going to that new Italian place downtown"},
			{Sender: "Jessica Milano", Message: "I love pasta, especially carbonara!"},
		},
		followUps: []string{
			"What specific dishes were mentioned?",
			"Which restaurants were recommended most?",
		},
	},
	{
		answer: "Recent gift discussions included a luxury watch mentioned by one fan and various " +
			"birthday presents discussed throughout the week.",
		confidence: 0.95,
		snippet: []entity.SnippetMessage{
			{Speaker: entity.SpeakerFan, Text: "My boyfriend got me this beautiful watch for my birthday..."},
		},
		context: []entity.ChatMessage{
			{Sender: "TINA ❤️ LOVE", Message: "My boyfriend got me this beautiful watch for my birthday..."},
		},
		followUps: []string{
			"What other gifts were mentioned?",
			"What brands were discussed?",
		},
	},
	{
		answer: "Fans talked about weekend activities, including a planned trip to Malibu and trying " +
			"surfing for the first time.",
		confidence: 0.82,
		snippet: []entity.SnippetMessage{
			{Speaker: entity.SpeakerFan, Text: "I'm planning this amazing weekend trip to Malibu!"},
			{Speaker: entity.SpeakerFan, Text: "Definitely want to try surfing for the first time. The ocean views there are supposed to be breathtaking!"},
		},
		context: []entity.ChatMessage{
			{Sender: "Sarah Cooper", Message: "I'm planning this amazing weekend trip to Malibu!"},
			{Sender: "Sarah Cooper", Message: "Definitely want to try surfing for the first time. The ocean views there are supposed to be breathtaking!"},
		},
		followUps: []string{
			"What other activities were planned?",
			"Did fans mention any other destinations?",
		},
	},
}

// sharedFanSnippet backs the stats answer for directory fans that have no
// dedicated scenario.
var sharedFanSnippet = []entity.SnippetMessage{
	{Speaker: entity.SpeakerFan, Text: "Yesterday we had Italian food at that new restaurant downtown!", Timestamp: "2:30 PM"},
	{Speaker: entity.SpeakerModel, Text: "That sounds delicious! What did you order?", Timestamp: "2:31 PM"},
}
