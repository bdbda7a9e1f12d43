package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	imageButtonsPerRow = 5
	maxMediaGroup      = 10
)

// QuizT renders sessions to a chat and reacts to answers, replays and the
// events the session's timers post back to the bot loop.
type QuizT struct {
	bot        BotSender
	cache      *cache.Cache
	service    QuizSI
	media      MediaI
	events     eventPoster
	timing     Timing
	player     func(chatID int64) quiz.Player
	startTimer func(interval time.Duration, fn func(time.Time)) quiz.TimerStopper
	log        *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, media MediaI, events eventPoster, timing Timing, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		media:   media,
		events:  events,
		timing:  timing,
		player: func(chatID int64) quiz.Player {
			return NewAudioPlayer(bot, media, chatID)
		},
		startTimer: func(interval time.Duration, fn func(time.Time)) quiz.TimerStopper {
			return quiz.StartTicker(interval, fn)
		},
		log: log,
	}
}

func (t *QuizT) start(chatID, userID int64, setup cache.Setup) {
	session, err := t.service.NewSession(setup.Settings, setup.Pool)
	if err != nil {
		t.log.Warn("failed to create quiz", zap.Int64("user", userID), zap.Error(err))
		t.sendStartError(chatID, err)
		return
	}

	game := &cache.Game{
		ChatID:   chatID,
		Session:  session,
		Category: setup.Category,
		Pool:     setup.Pool,
	}
	if prev, replaced := t.cache.SetGame(userID, game); replaced {
		prev.Session.Reset()
	}

	t.begin(userID, game)
}

func (t *QuizT) sendStartError(chatID int64, err error) {
	text := "❌ Could not start the quiz. Try again later."
	if errors.Is(err, quiz.ErrNoItems) {
		text = "😕 No items available for this quiz."
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, text))
}

func (t *QuizT) begin(userID int64, game *cache.Game) {
	turn := game.Session.Start()

	sessionID := game.Session.ID()
	timer := t.startTimer(t.timing.TickInterval, func(time.Time) {
		t.events.offer(event{kind: eventTick, userID: userID, sessionID: sessionID})
	})
	game.Session.AttachTimer(timer)

	msg := tgbotapi.NewMessage(game.ChatID, statusText(game.Session))
	msg.ReplyMarkup = stopKeyboard()
	if sent, ok := sendMessage(t.bot, t.log, msg); ok {
		game.StatusMessageID = sent.MessageID
	}

	if game.Session.Complete() {
		t.finish(game)
		return
	}

	t.renderTurn(userID, game, turn)
}

func (t *QuizT) renderTurn(userID int64, game *cache.Game, turn quiz.Turn) {
	if turn.AnswerType == models.AnswerImage {
		t.sendOptionImages(game.ChatID, turn)
	}

	var (
		sent tgbotapi.Message
		ok   bool
	)
	keyboard := optionsKeyboard(turn, nil)
	prompt := promptText(turn)

	if turn.QuestionType == models.QuestionImage {
		sent, ok = t.sendImagePrompt(game.ChatID, turn.PromptImage, prompt, keyboard)
	} else {
		msg := tgbotapi.NewMessage(game.ChatID, prompt)
		msg.ReplyMarkup = keyboard
		sent, ok = sendMessage(t.bot, t.log, msg)
	}
	if !ok {
		return
	}
	game.QuestionMessageID = sent.MessageID

	if turn.QuestionType.IsAudio() {
		t.events.after(t.timing.AutoplayDelay, event{
			kind:      eventAutoplay,
			userID:    userID,
			sessionID: game.Session.ID(),
			question:  turn.Index,
		})
	}
}

// sendImagePrompt sends the picture with the answers attached. A picture that
// is missing or that Telegram rejects is replaced by a text prompt so the
// answers are always delivered.
func (t *QuizT) sendImagePrompt(chatID int64, image, prompt string, keyboard tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, bool) {
	if file, found := t.media.File(image); found {
		photo := tgbotapi.NewPhoto(chatID, file)
		photo.Caption = prompt
		photo.ReplyMarkup = keyboard
		if sent, ok := sendMessage(t.bot, t.log, photo); ok {
			return sent, true
		}
	}

	t.log.Warn("prompt image unavailable", zap.String("path", image))
	msg := tgbotapi.NewMessage(chatID, "🖼 (picture unavailable)\n\n"+prompt)
	msg.ReplyMarkup = keyboard
	return sendMessage(t.bot, t.log, msg)
}

// sendOptionImages shows picture answers numbered like their buttons.
func (t *QuizT) sendOptionImages(chatID int64, turn quiz.Turn) {
	photos := make([]tgbotapi.InputMediaPhoto, 0, len(turn.Options))
	for i, opt := range turn.Options {
		file, ok := t.media.File(opt.Display)
		if !ok {
			t.log.Warn("answer image unavailable", zap.String("path", opt.Display))
			continue
		}
		photo := tgbotapi.NewInputMediaPhoto(file)
		photo.Caption = strconv.Itoa(i + 1)
		photos = append(photos, photo)
	}

	if len(photos) >= 2 && len(photos) <= maxMediaGroup {
		media := make([]interface{}, 0, len(photos))
		for _, p := range photos {
			media = append(media, p)
		}
		if _, err := t.bot.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, media)); err != nil {
			t.log.Warn("failed to send answer images", zap.Error(err))
		}
		return
	}

	for _, p := range photos {
		photo := tgbotapi.NewPhoto(chatID, p.Media)
		photo.Caption = p.Caption
		sendMessage(t.bot, t.log, photo)
	}
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	switch {
	case strings.HasPrefix(data, cbAnswer):
		question, option, ok := parseAnswer(strings.TrimPrefix(data, cbAnswer))
		if !ok {
			t.log.Warn("malformed answer", zap.String("data", data))
			return
		}
		t.answer(userID, query.Message.MessageID, question, option)

	case strings.HasPrefix(data, cbPlay):
		question, err := strconv.Atoi(strings.TrimPrefix(data, cbPlay))
		if err != nil {
			return
		}
		t.replay(userID, query.Message.MessageID, question)

	case data == cbStop:
		t.stop(chatID, userID)

	case data == cbAgain:
		t.again(chatID, userID)
	}
}

// answer accepts presses on the current question message only. Buttons of
// earlier runs carry the same question indexes.
func (t *QuizT) answer(userID int64, messageID, question, option int) {
	game, ok := t.cache.GetGame(userID)
	if !ok || messageID != game.QuestionMessageID {
		return
	}

	turn, ok := game.Session.Current()
	if !ok || turn.Index != question {
		return
	}

	eval, err := game.Session.Select(option)
	if errors.Is(err, quiz.ErrAlreadyAnswered) {
		return
	}
	if err != nil {
		t.log.Warn("failed to select answer", zap.Int64("user", userID), zap.Error(err))
		return
	}

	editMsg := tgbotapi.NewEditMessageReplyMarkup(game.ChatID, game.QuestionMessageID, optionsKeyboard(turn, eval.Marks))
	sendMessage(t.bot, t.log, editMsg)
	t.updateStatus(game)

	t.events.after(t.timing.AdvanceDelay, event{
		kind:      eventAdvance,
		userID:    userID,
		sessionID: game.Session.ID(),
		question:  question,
	})
}

func (t *QuizT) replay(userID int64, messageID, question int) {
	game, ok := t.cache.GetGame(userID)
	if !ok || messageID != game.QuestionMessageID {
		return
	}
	if turn, ok := game.Session.Current(); ok && turn.Index == question {
		t.playAudio(userID, game)
	}
}

func (t *QuizT) playAudio(userID int64, game *cache.Game) {
	path, ok := game.Session.RequestAudio()
	if !ok {
		return
	}

	turn, _ := game.Session.Current()
	ev := event{
		kind:      eventAudioDone,
		userID:    userID,
		sessionID: game.Session.ID(),
		question:  turn.Index,
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timing.Timeout)
	done := t.player(game.ChatID).Play(ctx, path)
	go func() {
		defer cancel()
		ev.err = <-done
		t.events.post(ev)
	}()
}

func (t *QuizT) handleEvent(ev event) {
	game, ok := t.cache.GetGame(ev.userID)
	if !ok || game.Session.ID() != ev.sessionID {
		return
	}

	turn, active := game.Session.Current()

	switch ev.kind {
	case eventTick:
		if active {
			t.updateStatus(game)
		}

	case eventAudioDone:
		if !active || turn.Index != ev.question {
			return
		}
		game.Session.AudioFinished()
		if ev.err != nil {
			t.log.Warn("audio playback failed", zap.Int64("user", ev.userID), zap.Error(ev.err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(game.ChatID, "⚠️ Could not play the recording."))
		}

	case eventAutoplay:
		if active && turn.Index == ev.question && !turn.Answered {
			t.playAudio(ev.userID, game)
		}

	case eventAdvance:
		if !active || turn.Index != ev.question {
			return
		}
		done, err := game.Session.Advance()
		if err != nil {
			t.log.Warn("failed to advance quiz", zap.Int64("user", ev.userID), zap.Error(err))
			return
		}
		if done {
			t.finish(game)
			return
		}
		next, _ := game.Session.Current()
		t.updateStatus(game)
		t.renderTurn(ev.userID, game, next)
	}
}

func (t *QuizT) finish(game *cache.Game) {
	result := game.Session.End()
	t.updateStatus(game)

	msg := tgbotapi.NewMessage(game.ChatID, resultText(result))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", cbAgain),
		tgbotapi.NewInlineKeyboardButtonData("🎯 New quiz", cbNewQuiz),
	))
	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) stop(chatID, userID int64) {
	game, ok := t.cache.GetGame(userID)
	if !ok || game.Session.Complete() {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "There is no quiz running."))
		return
	}
	t.finish(game)
}

// again starts a new session over the same words and settings.
func (t *QuizT) again(chatID, userID int64) {
	game, ok := t.cache.GetGame(userID)
	if !ok {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "⌛ This quiz has expired. Use /quiz to start again."))
		return
	}

	settings := game.Session.Settings()
	game.Session.Reset()

	session, err := t.service.NewSession(settings, game.Pool)
	if err != nil {
		t.cache.DeleteGame(userID)
		t.log.Warn("failed to restart quiz", zap.Int64("user", userID), zap.Error(err))
		t.sendStartError(chatID, err)
		return
	}

	next := &cache.Game{
		ChatID:   chatID,
		Session:  session,
		Category: game.Category,
		Pool:     game.Pool,
	}
	t.cache.SetGame(userID, next)
	t.begin(userID, next)
}

func (t *QuizT) updateStatus(game *cache.Game) {
	if game.StatusMessageID == 0 {
		return
	}

	editMsg := tgbotapi.NewEditMessageText(game.ChatID, game.StatusMessageID, statusText(game.Session))
	if !game.Session.Complete() {
		keyboard := stopKeyboard()
		editMsg.ReplyMarkup = &keyboard
	}
	if _, err := t.bot.Send(editMsg); err != nil {
		t.log.Debug("status not updated", zap.Error(err))
	}
}

// shutdown stops the timers of every game.
func (t *QuizT) shutdown() {
	for _, game := range t.cache.Games() {
		game.Session.Reset()
	}
}

func statusText(s *quiz.Session) string {
	p := s.Progress()
	elapsed := quiz.FormatElapsed(s.Elapsed())
	if s.Complete() {
		return fmt.Sprintf("🏁 Finished · 🏆 %d/%d · ⏱ %s", p.Score, p.Total, elapsed)
	}
	return fmt.Sprintf("❓ Question %d/%d · 🏆 %d · ⏱ %s", p.Current, p.Total, p.Score, elapsed)
}

func resultText(r models.Result) string {
	text := fmt.Sprintf("🏁 Quiz complete!\n\n🏆 Score: %d/%d\n⏱ Time: %s", r.Score, r.Total, r.Elapsed)
	if r.Total > 0 && r.Score == r.Total {
		text += "\n\n🐉 Da iawn! Every answer right."
	}
	return text
}

func promptText(turn quiz.Turn) string {
	var header string
	switch turn.QuestionType {
	case models.QuestionEnglishText:
		header = "🇬🇧 " + turn.PromptText
	case models.QuestionWelshText:
		header = "🐉 " + turn.PromptText
	case models.QuestionEnglishAudio:
		header = "🔊 Listen (English)"
	case models.QuestionWelshAudio:
		header = "🔊 Listen (Welsh)"
	}

	var instruction string
	switch turn.AnswerType {
	case models.AnswerWelshText:
		instruction = "Choose the Welsh word"
	case models.AnswerEnglishText:
		instruction = "Choose the English word"
	case models.AnswerImage:
		instruction = "Choose the matching picture"
	}

	text := fmt.Sprintf("Question %d/%d", turn.Index+1, turn.Total)
	if header != "" {
		text += "\n\n" + header
	}
	return text + "\n\n" + instruction
}

func optionsKeyboard(turn quiz.Turn, marks []models.Mark) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton

	for i, opt := range turn.Options {
		label := opt.Display
		if turn.AnswerType == models.AnswerImage {
			label = strconv.Itoa(i + 1)
		}
		if i < len(marks) {
			label = markPrefix(marks[i]) + label
		}
		data := fmt.Sprintf("%s%d:%d", cbAnswer, turn.Index, i)
		button := tgbotapi.NewInlineKeyboardButtonData(label, data)

		if turn.AnswerType != models.AnswerImage {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
			continue
		}
		row = append(row, button)
		if len(row) == imageButtonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if turn.QuestionType.IsAudio() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔊 Play", cbPlay+strconv.Itoa(turn.Index)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func markPrefix(m models.Mark) string {
	switch m {
	case models.MarkCorrect:
		return "✅ "
	case models.MarkIncorrect:
		return "❌ "
	}
	return ""
}

func stopKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", cbStop),
	))
}

func parseAnswer(s string) (question, option int, ok bool) {
	q, o, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}
	question, err := strconv.Atoi(q)
	if err != nil {
		return 0, 0, false
	}
	option, err = strconv.Atoi(o)
	if err != nil {
		return 0, 0, false
	}
	return question, option, true
}
