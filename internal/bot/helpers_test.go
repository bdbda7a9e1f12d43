package bot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	mock_bot "github.com/ZoVoS/welsh-advanced/internal/bot/mock"
	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUserID int64 = 456
	testChatID int64 = 123
)

var testTiming = Timing{
	Timeout:       time.Second,
	AdvanceDelay:  700 * time.Millisecond,
	AutoplayDelay: 300 * time.Millisecond,
	TickInterval:  time.Second,
}

type scheduledEvent struct {
	delay time.Duration
	ev    event
}

type recordedEvents struct {
	mu        sync.Mutex
	posted    []event
	offered   []event
	scheduled []scheduledEvent
}

func (r *recordedEvents) post(ev event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posted = append(r.posted, ev)
}

func (r *recordedEvents) offer(ev event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offered = append(r.offered, ev)
}

func (r *recordedEvents) after(delay time.Duration, ev event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, scheduledEvent{delay: delay, ev: ev})
}

func (r *recordedEvents) Posted() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.posted...)
}

func (r *recordedEvents) Offered() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event(nil), r.offered...)
}

func (r *recordedEvents) Scheduled() []scheduledEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]scheduledEvent(nil), r.scheduled...)
}

// fakeMedia publishes every path under a CDN url except the missing ones.
type fakeMedia struct {
	missing map[string]bool
}

func (f fakeMedia) File(path string) (tgbotapi.RequestFileData, bool) {
	if path == "" || f.missing[path] {
		return nil, false
	}
	return tgbotapi.FileURL("https://cdn.test" + path), true
}

type fakePlayer struct {
	mu    sync.Mutex
	err   error
	paths []string
}

func (p *fakePlayer) Play(ctx context.Context, path string) <-chan error {
	p.mu.Lock()
	p.paths = append(p.paths, path)
	p.mu.Unlock()

	done := make(chan error, 1)
	done <- p.err
	close(done)
	return done
}

func (p *fakePlayer) Paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...)
}

type fakeTimer struct {
	mu    sync.Mutex
	stops int
}

func (f *fakeTimer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeTimer) Stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type quizFixture struct {
	quiz   *QuizT
	bot    *mock_bot.MockBot
	events *recordedEvents
	player *fakePlayer
	timers []*fakeTimer
	ticks  []func(time.Time)
	clock  *fakeClock
}

func (f *quizFixture) lastTimer() *fakeTimer {
	return f.timers[len(f.timers)-1]
}

// questionMessage is the id of the message carrying the current answer buttons.
func (f *quizFixture) questionMessage() int {
	game, ok := f.quiz.cache.GetGame(testUserID)
	if !ok {
		return 0
	}
	return game.QuestionMessageID
}

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) *quizFixture {
	t.Helper()

	mockService := mock_bot.NewMockServiceI(ctrl)
	if setupMock != nil {
		setupMock(mockService)
	}

	f := &quizFixture{
		bot:    &mock_bot.MockBot{},
		events: &recordedEvents{},
		player: &fakePlayer{},
		clock:  newFakeClock(),
	}

	f.quiz = NewQuizTAPI(f.bot, cache.NewCache(), mockService, fakeMedia{}, f.events, testTiming, zap.NewNop())
	f.quiz.player = func(chatID int64) quiz.Player { return f.player }
	f.quiz.startTimer = func(interval time.Duration, fn func(time.Time)) quiz.TimerStopper {
		timer := &fakeTimer{}
		f.timers = append(f.timers, timer)
		f.ticks = append(f.ticks, fn)
		return timer
	}

	return f
}

func vocabulary() []models.VocabularyItem {
	return []models.VocabularyItem{
		{
			ID: "cat", English: "cat", Welsh: "cath",
			Images:     []string{"/assets/animals/cat/images/cat.jpg"},
			WelshAudio: []string{"/assets/animals/cat/welsh_audio/cath.mp3"},
		},
		{
			ID: "dog", English: "dog", Welsh: "ci",
			Images:     []string{"/assets/animals/dog/images/dog.jpg"},
			WelshAudio: []string{"/assets/animals/dog/welsh_audio/ci.mp3"},
		},
		{
			ID: "horse", English: "horse", Welsh: "ceffyl",
			Images:     []string{"/assets/animals/horse/images/horse.jpg"},
			WelshAudio: []string{"/assets/animals/horse/welsh_audio/ceffyl.mp3"},
		},
	}
}

func newSession(t *testing.T, id string, settings models.Settings, clock *fakeClock) *quiz.Session {
	t.Helper()
	session, err := quiz.NewSession(id, settings, vocabulary(), rand.New(rand.NewSource(1)), clock.now)
	require.NoError(t, err)
	return session
}

func textSettings(count int) models.Settings {
	return models.Settings{
		Mode:              models.ModeEnglishToWelsh,
		Difficulty:        3,
		QuestionCount:     count,
		PreferPrimaryText: true,
	}
}

// correctOption finds the button of the item the active question asks for.
func correctOption(t *testing.T, session *quiz.Session) int {
	t.Helper()
	turn, ok := session.Current()
	require.True(t, ok)
	id := session.Questions()[turn.Index].Item.ID
	for i, opt := range turn.Options {
		if opt.ItemID == id {
			return i
		}
	}
	t.Fatalf("correct option missing for %s", id)
	return -1
}

func wrongOption(t *testing.T, session *quiz.Session) int {
	t.Helper()
	correct := correctOption(t, session)
	if correct == 0 {
		return 1
	}
	return 0
}

func buttonLabels(markup tgbotapi.InlineKeyboardMarkup) []string {
	var labels []string
	for _, row := range markup.InlineKeyboard {
		for _, b := range row {
			labels = append(labels, b.Text)
		}
	}
	return labels
}

func buttonData(markup tgbotapi.InlineKeyboardMarkup) []string {
	var data []string
	for _, row := range markup.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				data = append(data, *b.CallbackData)
			}
		}
	}
	return data
}

func hasPrefixed(labels []string, prefix string) int {
	n := 0
	for _, l := range labels {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

// photoRejectingBot fails every photo the way Telegram does for files that
// are not images.
type photoRejectingBot struct {
	*mock_bot.MockBot
}

func (b photoRejectingBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if _, ok := c.(tgbotapi.PhotoConfig); ok {
		return tgbotapi.Message{}, errors.New("Bad Request: IMAGE_PROCESS_FAILED")
	}
	return b.MockBot.Send(c)
}
