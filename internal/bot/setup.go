package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var (
	difficultyChoices = []int{2, 3, 4, 5, 6}
	countChoices      = []int{5, 10, 15, 20}

	modeLabels = map[models.Mode]string{
		models.ModeImageToWelsh:        "🖼 Picture → Welsh",
		models.ModeEnglishToWelsh:      "🇬🇧 English → Welsh",
		models.ModeWelshToEnglish:      "🐉 Welsh → English",
		models.ModeAudioToWelsh:        "🔊 English audio → Welsh",
		models.ModeWelshAudioToEnglish: "🔊 Welsh audio → English",
		models.ModeMixed:               "🎲 Mixed",
	}
)

const (
	prefText  = "text"
	prefMedia = "media"

	msgSetupExpired = "⌛ This menu has expired. Use /quiz to start again."
)

type starter interface {
	start(chatID, userID int64, setup cache.Setup)
}

// SetupT walks a user through category, mode, difficulty, question count
// and preferences before handing the result to the quiz.
type SetupT struct {
	bot      BotSender
	cache    *cache.Cache
	service  VocabularySI
	starter  starter
	defaults models.Settings
	timeout  time.Duration
	log      *zap.Logger
}

func NewSetupTAPI(bot BotSender, cache *cache.Cache, service VocabularySI, starter starter, defaults models.Settings, timeout time.Duration, log *zap.Logger) *SetupT {
	return &SetupT{
		bot:      bot,
		cache:    cache,
		service:  service,
		starter:  starter,
		defaults: defaults,
		timeout:  timeout,
		log:      log,
	}
}

func (t *SetupT) sendCategories(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	categories := t.service.Categories(ctx)
	if len(categories) == 0 {
		msg := tgbotapi.NewMessage(chatID, "😕 No categories available yet. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	setup := cache.Setup{
		ChatID:     chatID,
		Categories: categories,
		Settings:   t.defaults,
	}
	setup.Settings.Mode = ""

	msg := tgbotapi.NewMessage(chatID, "📚 Choose a category:")
	keyboard := categoriesKeyboard(categories)
	msg.ReplyMarkup = &keyboard

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		return
	}
	setup.MessageID = sent.MessageID

	t.cache.SetSetup(userID, setup)
}

func (t *SetupT) handleSetupCallbackQuery(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	setup, exists := t.cache.GetSetup(userID)
	if !exists || setup.MessageID != query.Message.MessageID {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, msgSetupExpired))
		return
	}

	if !strings.HasPrefix(data, cbCategory) && len(setup.Pool) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, msgSetupExpired))
		return
	}

	switch {
	case strings.HasPrefix(data, cbCategory):
		t.chooseCategory(userID, setup, strings.TrimPrefix(data, cbCategory))

	case strings.HasPrefix(data, cbMode):
		mode := models.Mode(strings.TrimPrefix(data, cbMode))
		if !mode.Valid() {
			t.log.Warn("unknown mode", zap.String("mode", string(mode)))
			return
		}
		setup.Settings.Mode = mode
		t.cache.SetSetup(userID, setup)
		t.edit(setup, summary(setup)+"\n\n🔢 How many answers per question?", choiceKeyboard(cbDifficulty, difficultyChoices))

	case strings.HasPrefix(data, cbDifficulty):
		n, ok := parseChoice(strings.TrimPrefix(data, cbDifficulty), difficultyChoices)
		if !ok || setup.Settings.Mode == "" {
			return
		}
		setup.Settings.Difficulty = n
		t.cache.SetSetup(userID, setup)
		t.edit(setup, summary(setup)+"\n\n❓ How many questions?", choiceKeyboard(cbCount, countChoices))

	case strings.HasPrefix(data, cbCount):
		n, ok := parseChoice(strings.TrimPrefix(data, cbCount), countChoices)
		if !ok || setup.Settings.Mode == "" {
			return
		}
		setup.Settings.QuestionCount = n
		t.cache.SetSetup(userID, setup)
		t.edit(setup, summary(setup)+"\n\n⚙️ Preferences:", preferencesKeyboard(setup.Settings))

	case strings.HasPrefix(data, cbPref):
		switch strings.TrimPrefix(data, cbPref) {
		case prefText:
			setup.Settings.PreferPrimaryText = !setup.Settings.PreferPrimaryText
		case prefMedia:
			setup.Settings.PreferPrimaryMedia = !setup.Settings.PreferPrimaryMedia
		default:
			return
		}
		t.cache.SetSetup(userID, setup)
		t.edit(setup, summary(setup)+"\n\n⚙️ Preferences:", preferencesKeyboard(setup.Settings))

	case data == cbStart:
		if setup.Settings.Mode == "" {
			return
		}
		t.cache.DeleteSetup(userID)
		t.edit(setup, summary(setup)+"\n\n🚀 Starting…", nil)
		t.starter.start(chatID, userID, setup)
	}
}

func (t *SetupT) chooseCategory(userID int64, setup cache.Setup, categoryID string) {
	name, ok := setup.CategoryName(categoryID)
	if !ok {
		t.log.Warn("unknown category", zap.String("category", categoryID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	pool := t.service.Items(ctx, categoryID)
	if len(pool) == 0 {
		back := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏪ Categories", cbNewQuiz),
		))
		t.edit(setup, fmt.Sprintf("😕 No items available in %s.", name), &back)
		return
	}

	setup.Category = models.Category{ID: categoryID, Name: name}
	setup.Pool = pool
	t.cache.SetSetup(userID, setup)

	t.edit(setup, summary(setup)+"\n\n🎮 Choose a mode:", modesKeyboard())
}

func (t *SetupT) edit(setup cache.Setup, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	editMsg := tgbotapi.NewEditMessageText(setup.ChatID, setup.MessageID, text)
	editMsg.ReplyMarkup = keyboard
	sendMessage(t.bot, t.log, editMsg)
}

func summary(setup cache.Setup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s · %d words", setup.Category.Name, len(setup.Pool))
	if setup.Settings.Mode != "" {
		fmt.Fprintf(&b, "\n🎮 %s", modeLabels[setup.Settings.Mode])
		fmt.Fprintf(&b, "\n🔢 %d answers · ❓ %d questions", setup.Settings.Difficulty, setup.Settings.QuestionCount)
	}
	return b.String()
}

func parseChoice(s string, choices []int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	for _, c := range choices {
		if c == n {
			return n, true
		}
	}
	return 0, false
}

func categoriesKeyboard(categories []models.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Name, cbCategory+c.ID))
		if len(row) == 2 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func modesKeyboard() *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.Modes))
	for _, m := range models.Modes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(modeLabels[m], cbMode+string(m)),
		))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

func choiceKeyboard(prefix string, choices []int) *tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, c := range choices {
		n := strconv.Itoa(c)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(n, prefix+n))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}

func preferencesKeyboard(settings models.Settings) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle(settings.PreferPrimaryText)+" Main word forms only", cbPref+prefText),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(toggle(settings.PreferPrimaryMedia)+" Main pictures and recordings only", cbPref+prefMedia),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start", cbStart),
		),
	)
	return &keyboard
}

func toggle(on bool) string {
	if on {
		return "☑️"
	}
	return "⬜"
}
