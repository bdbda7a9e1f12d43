package quiz

import (
	"fmt"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

// Turn is everything a renderer needs to show the active question.
type Turn struct {
	Index         int
	Total         int
	Score         int
	QuestionType  models.QuestionType
	AnswerType    models.AnswerType
	PromptText    string
	PromptImage   string
	AudioLanguage models.Language
	Options       []models.RenderedOption
	Answered      bool
}

// Session is the state of one quiz. It is not safe for concurrent use: a
// single owner drives it through Start, Select, Advance, End and Reset.
type Session struct {
	id       string
	settings models.Settings
	pool     []models.VocabularyItem
	rnd      Rand
	now      func() time.Time

	questions []models.Question
	current   int
	score     int
	turn      *Turn
	selection *models.Evaluation
	complete  bool
	started   bool
	startTime time.Time
	endTime   time.Time
	playing   bool
	timer     TimerStopper
}

func NewSession(id string, settings models.Settings, pool []models.VocabularyItem, rnd Rand, now func() time.Time) (*Session, error) {
	if len(pool) == 0 {
		return nil, ErrNoItems
	}
	if !settings.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidSettings, settings.Mode)
	}
	if settings.Difficulty < 1 || settings.QuestionCount < 1 {
		return nil, fmt.Errorf("%w: difficulty %d, questions %d", ErrInvalidSettings, settings.Difficulty, settings.QuestionCount)
	}
	if rnd == nil {
		rnd = NewRand()
	}
	if now == nil {
		now = time.Now
	}

	return &Session{
		id:       id,
		settings: settings,
		pool:     append([]models.VocabularyItem(nil), pool...),
		rnd:      rnd,
		now:      now,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Settings() models.Settings {
	return s.settings
}

func (s *Session) Questions() []models.Question {
	return s.questions
}

func (s *Session) Complete() bool {
	return s.complete
}

func (s *Session) Started() bool {
	return s.started
}

// Start begins a fresh run over the same pool and settings.
func (s *Session) Start() Turn {
	s.stopTimer()
	s.current = 0
	s.score = 0
	s.selection = nil
	s.complete = false
	s.playing = false
	s.endTime = time.Time{}
	s.questions = GenerateQuestions(s.rnd, s.pool, s.settings.Mode, s.settings.QuestionCount)
	s.startTime = s.now()
	s.started = true

	s.prepareTurn()
	if s.turn == nil {
		s.finish()
		return Turn{}
	}
	return *s.turn
}

// Current returns the active question, or false once the quiz is over.
func (s *Session) Current() (Turn, bool) {
	if s.turn == nil || s.complete {
		return Turn{}, false
	}
	return *s.turn, true
}

// Select records the answer for the active question. Only the first
// selection counts; later ones return ErrAlreadyAnswered.
func (s *Session) Select(index int) (models.Evaluation, error) {
	if !s.started {
		return models.Evaluation{}, ErrNotStarted
	}
	if s.complete || s.turn == nil {
		return models.Evaluation{}, ErrQuizComplete
	}
	if s.selection != nil {
		return *s.selection, ErrAlreadyAnswered
	}

	correct := s.questions[s.current].Item.ID
	eval, err := Evaluate(s.turn.Options, index, correct)
	if err != nil {
		return models.Evaluation{}, err
	}

	s.selection = &eval
	s.turn.Answered = true
	if eval.Correct {
		s.score++
		s.turn.Score = s.score
	}

	return eval, nil
}

// Advance moves past an answered question. It reports true when that was
// the last one and the quiz has ended.
func (s *Session) Advance() (bool, error) {
	if !s.started {
		return false, ErrNotStarted
	}
	if s.complete {
		return true, ErrQuizComplete
	}
	if s.selection == nil {
		return false, ErrNoSelection
	}

	s.current++
	s.selection = nil
	s.playing = false

	if s.current >= len(s.questions) {
		s.finish()
		return true, nil
	}

	s.prepareTurn()
	return false, nil
}

// End stops the quiz early or after the last question.
func (s *Session) End() models.Result {
	if !s.complete {
		s.finish()
	}
	return s.Result()
}

func (s *Session) Result() models.Result {
	end := s.endTime
	if end.IsZero() {
		end = s.now()
	}
	return models.Result{
		Score:    s.score,
		Total:    len(s.questions),
		Elapsed:  FormatElapsed(end.Sub(s.startTime)),
		Started:  s.startTime,
		Finished: s.endTime,
	}
}

// Reset drops all progress and stops the timer.
func (s *Session) Reset() {
	s.stopTimer()
	s.questions = nil
	s.current = 0
	s.score = 0
	s.turn = nil
	s.selection = nil
	s.complete = false
	s.started = false
	s.playing = false
	s.startTime = time.Time{}
	s.endTime = time.Time{}
}

func (s *Session) Progress() models.Progress {
	current := s.current + 1
	if current > len(s.questions) {
		current = len(s.questions)
	}
	return models.Progress{
		Current: current,
		Total:   len(s.questions),
		Score:   s.score,
	}
}

func (s *Session) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	if !s.endTime.IsZero() {
		return s.endTime.Sub(s.startTime)
	}
	return s.now().Sub(s.startTime)
}

// AttachTimer hands the session the timer to stop when the quiz ends or is
// reset. A previously attached timer is stopped.
func (s *Session) AttachTimer(t TimerStopper) {
	s.stopTimer()
	s.timer = t
}

// RequestAudio returns the recording to play for the active audio question
// and marks playback as running. It returns false while a playback is
// running, for non-audio questions and when the item has no recording.
func (s *Session) RequestAudio() (string, bool) {
	if s.playing || s.turn == nil || s.complete || !s.turn.QuestionType.IsAudio() {
		return "", false
	}

	item := s.questions[s.current].Item
	path := ResolveAudio(s.rnd, item, s.turn.AudioLanguage, s.settings.PreferPrimaryMedia)
	if path == "" {
		return "", false
	}

	s.playing = true
	return path, true
}

// AudioFinished clears the playback guard after completion or failure.
func (s *Session) AudioFinished() {
	s.playing = false
}

func (s *Session) AudioPlaying() bool {
	return s.playing
}

func (s *Session) finish() {
	s.complete = true
	s.turn = nil
	s.endTime = s.now()
	s.stopTimer()
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) types(q models.Question) (models.QuestionType, models.AnswerType) {
	if s.settings.Mode == models.ModeMixed {
		return q.QuestionType, q.AnswerType
	}
	questionType, answerType, _ := s.settings.Mode.Types()
	return questionType, answerType
}

func (s *Session) prepareTurn() {
	if s.current >= len(s.questions) {
		s.turn = nil
		return
	}

	q := s.questions[s.current]
	questionType, answerType := s.types(q)

	turn := &Turn{
		Index:        s.current,
		Total:        len(s.questions),
		Score:        s.score,
		QuestionType: questionType,
		AnswerType:   answerType,
	}

	switch questionType {
	case models.QuestionImage:
		turn.PromptImage = ResolveImage(s.rnd, q.Item, s.settings.PreferPrimaryMedia)
	case models.QuestionEnglishText, models.QuestionWelshText:
		turn.PromptText = ResolveText(s.rnd, q.Item, questionType.Language(), s.settings.PreferPrimaryText)
	case models.QuestionEnglishAudio, models.QuestionWelshAudio:
		turn.AudioLanguage = questionType.Language()
	}

	items := BuildOptions(s.rnd, q.Item, s.pool, s.settings.Difficulty)
	turn.Options = RenderOptions(s.rnd, items, answerType, s.settings.PreferPrimaryText, s.settings.PreferPrimaryMedia)

	s.turn = turn
}
