package memory

import (
	"time"

	"atlas/internal/domain/entity"
)

// seed loads the sample dataset the dashboard ships with. IDs are fixed so
// the handle aliases and conversations line up across restarts.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	at := func(d time.Duration) *time.Time {
		t := now.Add(-d)
		return &t
	}

	fans := []*entity.Fan{
		{
			ID:           "fan_1",
			Name:         "TINA ❤️ LOVE",
			Avatar:       "https://images.unsplash.com/photo-1494790108755-2616b2e7a96c?w=100&h=100&fit=crop&crop=face",
			MessageCount: 66,
			PaidMessages: 22,
			TotalAmount:  "119.96",
			LastActivity: at(2 * time.Hour),
			Status:       entity.FanStatusActive,
		},
		{
			ID:           "fan_2",
			Name:         "Jessica Milano",
			Avatar:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
			MessageCount: 42,
			PaidMessages: 15,
			TotalAmount:  "87.50",
			LastActivity: at(4 * time.Hour),
			Status:       entity.FanStatusActive,
		},
		{
			ID:           "fan_3",
			Name:         "Sarah Cooper",
			Avatar:       "https://images.unsplash.com/photo-1534751516642-a1af1ef26a56?w=100&h=100&fit=crop&crop=face",
			MessageCount: 38,
			PaidMessages: 12,
			TotalAmount:  "65.20",
			LastActivity: at(8 * time.Hour),
			Status:       entity.FanStatusActive,
		},
		{
			ID:           "fan_4",
			Name:         "Emma Watson",
			Avatar:       "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=100&h=100&fit=crop&crop=face",
			MessageCount: 24,
			PaidMessages: 8,
			TotalAmount:  "45.30",
			LastActivity: at(48 * time.Hour),
			Status:       entity.FanStatusInactive,
		},
		{
			ID:           "fan_5",
			Name:         "Ashley Rodriguez",
			Avatar:       "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=100&h=100&fit=crop&crop=face",
			MessageCount: 89,
			PaidMessages: 31,
			TotalAmount:  "156.75",
			LastActivity: at(1 * time.Hour),
			Status:       entity.FanStatusActive,
		},
		{
			ID:           "fan_6",
			Name:         "Michelle Chen",
			Avatar:       "https://images.unsplash.com/photo-1489424731084-a5d8b219a5bb?w=100&h=100&fit=crop&crop=face",
			MessageCount: 15,
			PaidMessages: 3,
			TotalAmount:  "28.50",
			LastActivity: at(72 * time.Hour),
			Status:       entity.FanStatusInactive,
		},
	}
	for _, fan := range fans {
		s.fans[fan.ID] = fan
		s.fanOrder = append(s.fanOrder, fan.ID)
	}

	aliases := map[string]string{
		"tinalove": "fan_1",
		"tina":     "fan_1",
		"jessica":  "fan_2",
		"sarah":    "fan_3",
		"emma":     "fan_4",
		"ashley":   "fan_5",
		"michelle": "fan_6",
	}
	for handle, fanID := range aliases {
		s.handleIndex[handle] = fanID
	}

	conversations := []*entity.Conversation{
		{
			ID:    "conv_1",
			FanID: "fan_1",
			Messages: []entity.ChatMessage{
				{Sender: "TINA ❤️ LOVE", Message: "My boyfriend got me this beautiful watch for my birthday..."},
				{Sender: "You", Message: "That sounds amazing! Any special dinner plans?"},
				{Sender: "TINA ❤️ LOVE", Message: "Yes! We're going to that new Italian place downtown"},
			},
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:    "conv_2",
			FanID: "fan_2",
			Messages: []entity.ChatMessage{
				{Sender: "Jessica Milano", Message: "I love pasta, especially carbonara!"},
				{Sender: "You", Message: "Have you tried making it at home?"},
				{Sender: "Jessica Milano", Message: "Not yet, but I'd love to learn!"},
			},
			CreatedAt: now.Add(-3 * time.Hour),
		},
	}
	for _, conversation := range conversations {
		s.conversations[conversation.ID] = conversation
		s.convOrder = append(s.convOrder, conversation.ID)
	}

	questions := []*entity.AiQuestion{
		{
			ID:       "q_1",
			Question: "What gifts did fans mention this week?",
			Response: entity.AiResponse{
				Answer:     "Based on the conversations, TINA mentioned receiving a luxury watch from her boyfriend for her birthday.",
				Confidence: 0.95,
				Context: []entity.ChatMessage{
					{Sender: "TINA ❤️ LOVE", Message: "My boyfriend got me this beautiful watch for my birthday..."},
				},
				FollowUpQuestions: []string{
					"What other gifts did this fan mention this week?",
					"What brands of watches were discussed?",
				},
			},
			Confidence: "0.95",
			Context: []entity.ChatMessage{
				{Sender: "TINA ❤️ LOVE", Message: "My boyfriend got me this beautiful watch for my birthday..."},
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:       "q_2",
			Question: "What food did we discuss yesterday?",
			Response: entity.AiResponse{
				Answer:     "Yesterday's conversations included discussions about Italian food, specifically mentions of a new Italian restaurant downtown.",
				Confidence: 0.88,
				Context: []entity.ChatMessage{
					{Sender: "TINA ❤️ LOVE", Message: "Yes! We're going to that new Italian place downtown"},
				},
				FollowUpQuestions: []string{
					"What specific Italian dishes were mentioned?",
					"Which restaurants were recommended?",
				},
			},
			Confidence: "0.88",
			Context: []entity.ChatMessage{
				{Sender: "TINA ❤️ LOVE", Message: "Yes! We're going to that new Italian place downtown"},
			},
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
	for _, question := range questions {
		s.questions[question.ID] = question
		s.questionOrder = append(s.questionOrder, question.ID)
	}
}
