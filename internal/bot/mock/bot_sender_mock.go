package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBot records everything sent through it. Sent messages get increasing
// ids starting at 1.
type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
	MediaGroups  []tgbotapi.MediaGroupConfig
	SendErr      error
	nextID       int
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, c)
	if m.SendErr != nil {
		return tgbotapi.Message{}, m.SendErr
	}
	m.nextID++
	return tgbotapi.Message{MessageID: m.nextID, Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBot) SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MediaGroups = append(m.MediaGroups, config)
	messages := make([]tgbotapi.Message, 0, len(config.Media))
	for range config.Media {
		m.nextID++
		messages = append(messages, tgbotapi.Message{MessageID: m.nextID, Chat: &tgbotapi.Chat{ID: config.ChatID}})
	}
	return messages, nil
}

// Sent returns a copy of the messages sent so far.
func (m *MockBot) Sent() []tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), m.SentMessages...)
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
	bot.Requests = nil
	bot.MediaGroups = nil
}
