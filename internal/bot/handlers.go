package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonNewQuiz = "🎯 New quiz"
	ButtonStop    = "⏹ Stop quiz"
	ButtonHelp    = "ℹ️ Help"
)

// Callback data. Answers and replays carry the question index so presses on
// old messages can be told apart from the active question.
const (
	cbNewQuiz    = "new"
	cbCategory   = "cat:"
	cbMode       = "mode:"
	cbDifficulty = "diff:"
	cbCount      = "count:"
	cbPref       = "pref:"
	cbStart      = "start"
	cbAnswer     = "ans:"
	cbPlay       = "play:"
	cbStop       = "stop"
	cbAgain      = "again"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		t.startSetup(message)
	case "stop":
		t.stopQuiz(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🐉 Croeso! I am a Welsh vocabulary quiz bot.\n\n" +
		"✨ Pick a category and a mode and I will ask you words:\n" +
		"• 🖼 from pictures\n" +
		"• 🇬🇧 from English or 🐉 from Welsh\n" +
		"• 🔊 from recordings\n\n" +
		"Press the button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonNewQuiz),
			tgbotapi.NewKeyboardButton(ButtonStop),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — show the menu
/quiz — start a new quiz
/stop — stop the running quiz
/help — this message

🎯 During a quiz tap an answer. The next question follows on its own.
🔊 Audio questions play once by themselves; tap Play to hear them again.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat", message.Chat.ID))
		return
	}

	switch message.Text {
	case ButtonNewQuiz:
		t.startSetup(message)
	case ButtonStop:
		t.stopQuiz(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) startSetup(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat", message.Chat.ID))
		return
	}
	t.setup.sendCategories(message.Chat.ID, message.From.ID)
}

func (t *TelegramAPI) stopQuiz(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	t.quiz.stop(message.Chat.ID, message.From.ID)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.From == nil || query.Message == nil {
		t.log.Warn("callback without sender or message", zap.String("id", query.ID))
		return
	}

	data := query.Data

	switch {
	case data == cbNewQuiz:
		t.setup.sendCategories(query.Message.Chat.ID, query.From.ID)

	case strings.HasPrefix(data, cbCategory),
		strings.HasPrefix(data, cbMode),
		strings.HasPrefix(data, cbDifficulty),
		strings.HasPrefix(data, cbCount),
		strings.HasPrefix(data, cbPref),
		data == cbStart:
		t.setup.handleSetupCallbackQuery(query)

	case strings.HasPrefix(data, cbAnswer),
		strings.HasPrefix(data, cbPlay),
		data == cbStop,
		data == cbAgain:
		t.quiz.handleQuizCallbackQuery(query)

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user", query.From.ID))
	}
}
