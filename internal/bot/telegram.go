package bot

import (
	"context"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type VocabularySI interface {
	Categories(ctx context.Context) []models.Category
	Items(ctx context.Context, categoryID string) []models.VocabularyItem
}

type QuizSI interface {
	NewSession(settings models.Settings, pool []models.VocabularyItem) (*quiz.Session, error)
}

type ServiceI interface {
	VocabularySI
	QuizSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMediaGroup(config tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
}

// Timing holds the delays of the quiz flow.
type Timing struct {
	Timeout       time.Duration
	AdvanceDelay  time.Duration
	AutoplayDelay time.Duration
	TickInterval  time.Duration
}

type Options struct {
	Env       string
	Timing    Timing
	Defaults  models.Settings
	AssetsDir string
	PublicURL string
}

// TelegramAPI runs the bot. Every session is owned by the goroutine running
// Start: updates and timer events are handled there one at a time.
type TelegramAPI struct {
	api        *tgbotapi.BotAPI
	bot        BotSender
	setup      *SetupT
	quiz       *QuizT
	dispatcher *dispatcher
	log        *zap.Logger
}

func NewTelegramAPI(botToken string, opts Options, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = opts.Env == "development"

	t := newTelegramAPI(bot, opts, service, cache, log)
	t.api = bot

	return t, nil
}

func newTelegramAPI(bot BotSender, opts Options, service ServiceI, cache *cache.Cache, log *zap.Logger) *TelegramAPI {
	d := newDispatcher()
	media := NewMediaT(opts.AssetsDir, opts.PublicURL)
	quizT := NewQuizTAPI(bot, cache, service, media, d, opts.Timing, log)

	return &TelegramAPI{
		bot:        bot,
		setup:      NewSetupTAPI(bot, cache, service, quizT, opts.Defaults, opts.Timing.Timeout, log),
		quiz:       quizT,
		dispatcher: d,
		log:        log,
	}
}

// Start consumes updates and quiz events until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	t.log.Info("bot started", zap.String("username", t.api.Self.UserName))
	t.run(ctx, updates)
	t.log.Info("bot stopped")
}

func (t *TelegramAPI) run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer t.dispatcher.close()
	defer t.quiz.shutdown()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		case ev := <-t.dispatcher.events:
			t.quiz.handleEvent(ev)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) (tgbotapi.Message, bool) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return tgbotapi.Message{}, false
	}
	return sentMsg, true
}
