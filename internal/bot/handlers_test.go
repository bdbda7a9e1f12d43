package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	mock_bot "github.com/ZoVoS/welsh-advanced/internal/bot/mock"
	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTelegramAPIMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*TelegramAPI, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	if setupMock != nil {
		setupMock(mockService)
	}
	mockBot := &mock_bot.MockBot{}

	opts := Options{Timing: testTiming, Defaults: testDefaults}
	return newTelegramAPI(mockBot, opts, mockService, cache.NewCache(), zap.NewNop()), mockBot
}

func command(text string) *tgbotapi.Message {
	name := strings.Fields(text)[0]
	return &tgbotapi.Message{
		MessageID: 10,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		From:      &tgbotapi.User{ID: testUserID},
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 10,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: testChatID},
		From:      &tgbotapi.User{ID: testUserID},
	}
}

func TestTelegramAPI_handleUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		update     tgbotapi.Update
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:   "start command shows the menu",
			update: tgbotapi.Update{Message: command("/start")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				msg := mb.Sent()[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Croeso")
				_, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.True(t, ok)
			},
		},
		{
			name:   "help command",
			update: tgbotapi.Update{Message: command("/help")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Contains(t, mb.Sent()[0].(tgbotapi.MessageConfig).Text, "/quiz")
			},
		},
		{
			name:   "unknown command",
			update: tgbotapi.Update{Message: command("/translate")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, "Unknown command. Use /start", mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "quiz command lists categories",
			update: tgbotapi.Update{Message: command("/quiz")},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Categories(gomock.Any()).Return([]models.Category{{ID: "animals", Name: "Animals"}})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, "📚 Choose a category:", mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "new quiz button",
			update: tgbotapi.Update{Message: textMessage(ButtonNewQuiz)},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Categories(gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, "😕 No categories available yet. Try again later.", mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "stop button without quiz",
			update: tgbotapi.Update{Message: textMessage(ButtonStop)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, "There is no quiz running.", mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "help button",
			update: tgbotapi.Update{Message: textMessage(ButtonHelp)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Contains(t, mb.Sent()[0].(tgbotapi.MessageConfig).Text, "/stop")
			},
		},
		{
			name:   "free text",
			update: tgbotapi.Update{Message: textMessage("cath")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, "I did not get that. Use the buttons below.", mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "message without sender",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Text: "hello",
				Chat: &tgbotapi.Chat{ID: testChatID},
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.Sent())
			},
		},
		{
			name: "new quiz callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb1",
				From:    &tgbotapi.User{ID: testUserID},
				Message: &tgbotapi.Message{MessageID: 3, Chat: &tgbotapi.Chat{ID: testChatID}},
				Data:    cbNewQuiz,
			}},
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Categories(gomock.Any()).Return([]models.Category{{ID: "animals", Name: "Animals"}})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Requests, 1)
				answer, ok := mb.Requests[0].(tgbotapi.CallbackConfig)
				require.True(t, ok)
				assert.Equal(t, "cb1", answer.CallbackQueryID)
				require.Len(t, mb.Sent(), 1)
			},
		},
		{
			name: "setup callback without a menu",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb2",
				From:    &tgbotapi.User{ID: testUserID},
				Message: &tgbotapi.Message{MessageID: 3, Chat: &tgbotapi.Chat{ID: testChatID}},
				Data:    "mode:mixed",
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Sent(), 1)
				assert.Equal(t, msgSetupExpired, mb.Sent()[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "quiz callback without a game",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb3",
				From:    &tgbotapi.User{ID: testUserID},
				Message: &tgbotapi.Message{MessageID: 3, Chat: &tgbotapi.Chat{ID: testChatID}},
				Data:    "ans:0:1",
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.Sent())
			},
		},
		{
			name: "unknown callback",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb4",
				From:    &tgbotapi.User{ID: testUserID},
				Message: &tgbotapi.Message{MessageID: 3, Chat: &tgbotapi.Chat{ID: testChatID}},
				Data:    "know",
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.Sent())
			},
		},
		{
			name: "callback without message",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:   "cb5",
				From: &tgbotapi.User{ID: testUserID},
				Data: cbNewQuiz,
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.Sent())
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramAPIMock(t, ctrl, tt.f)
			api.handleUpdate(tt.update)

			tt.assertFunc(t, mb)
		})
	}
}

func TestTelegramAPI_run(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mb := newTelegramAPIMock(t, ctrl, nil)
	updates := make(chan tgbotapi.Update, 1)
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		api.run(ctx, updates)
	}()

	updates <- tgbotapi.Update{Message: command("/help")}
	api.dispatcher.post(event{kind: eventTick, userID: testUserID, sessionID: "gone"})

	require.Eventually(t, func() bool { return len(mb.Sent()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	// events posted after the loop stopped are dropped instead of blocking
	for i := 0; i < cap(api.dispatcher.events)+1; i++ {
		api.dispatcher.post(event{kind: eventTick})
	}
}

func TestTelegramAPI_runStopsWhenUpdatesClose(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _ := newTelegramAPIMock(t, ctrl, nil)
	updates := make(chan tgbotapi.Update)
	close(updates)

	done := make(chan struct{})
	go func() {
		defer close(done)
		api.run(context.Background(), updates)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
