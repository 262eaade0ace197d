package services

import (
	"math/rand/v2"
	"strings"
)

const (
	ChatbotExitWord = "bye"
	ChatbotFarewell = "I'm always here if you need to talk. 👋"
)

type moodResponse struct {
	keyword string
	reply   string
}

// Checked in order; the first keyword contained in the message wins.
var moodResponses = []moodResponse{
	{"sad", "I'm sorry you're feeling that way. Sometimes journaling helps you reflect and feel lighter."},
	{"anxious", "That's okay. Take a deep breath. Would you like a grounding tip?"},
	{"stress", "Stress can be overwhelming. Try closing your eyes and taking 3 deep breaths."},
	{"happy", "That's great to hear! What made you happy today?"},
	{"motivate", "Remember, progress is progress, even small steps count!"},
	{"hello", "Hello there! How are you feeling today?"},
}

var generalResponses = []string{
	"I'm here for you. Want to talk more about it?",
	"That sounds tough. Would you like to share more?",
	"I'm listening. Go on...",
	"You're not alone. Tell me more.",
	"Let it out, what's on your mind?",
}

type ChatReply struct {
	Reply    string `json:"reply"`
	Farewell bool   `json:"farewell"`
}

type ChatbotService struct {
	pick func(n int) int
}

// NewChatbotService takes the fallback picker; nil uses math/rand.
func NewChatbotService(pick func(n int) int) *ChatbotService {
	if pick == nil {
		pick = rand.IntN
	}
	return &ChatbotService{pick: pick}
}

func (s *ChatbotService) Reply(message string) ChatReply {
	msg := strings.ToLower(strings.TrimSpace(message))

	if msg == ChatbotExitWord {
		return ChatReply{Reply: ChatbotFarewell, Farewell: true}
	}

	for _, m := range moodResponses {
		if strings.Contains(msg, m.keyword) {
			return ChatReply{Reply: m.reply}
		}
	}

	return ChatReply{Reply: generalResponses[s.pick(len(generalResponses))]}
}

func GeneralResponses() []string {
	out := make([]string, len(generalResponses))
	copy(out, generalResponses)
	return out
}
