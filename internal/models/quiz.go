package models

import "time"

type Mode string

const (
	ModeImageToWelsh        Mode = "image-to-welsh"
	ModeEnglishToWelsh      Mode = "english-to-welsh"
	ModeWelshToEnglish      Mode = "welsh-to-english"
	ModeAudioToWelsh        Mode = "audio-to-welsh"
	ModeWelshAudioToEnglish Mode = "welsh-audio-to-english"
	ModeMixed               Mode = "mixed"
)

var Modes = []Mode{
	ModeImageToWelsh,
	ModeEnglishToWelsh,
	ModeWelshToEnglish,
	ModeAudioToWelsh,
	ModeWelshAudioToEnglish,
	ModeMixed,
}

func (m Mode) Valid() bool {
	for _, mode := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Types returns the question/answer pair a standard mode uses for every
// question. Mixed mode has no fixed pair and reports ok=false.
func (m Mode) Types() (QuestionType, AnswerType, bool) {
	switch m {
	case ModeImageToWelsh:
		return QuestionImage, AnswerWelshText, true
	case ModeEnglishToWelsh:
		return QuestionEnglishText, AnswerWelshText, true
	case ModeWelshToEnglish:
		return QuestionWelshText, AnswerEnglishText, true
	case ModeAudioToWelsh:
		return QuestionEnglishAudio, AnswerWelshText, true
	case ModeWelshAudioToEnglish:
		return QuestionWelshAudio, AnswerEnglishText, true
	}
	return "", "", false
}

type QuestionType string

const (
	QuestionImage        QuestionType = "image"
	QuestionEnglishText  QuestionType = "english-text"
	QuestionWelshText    QuestionType = "welsh-text"
	QuestionEnglishAudio QuestionType = "english-audio"
	QuestionWelshAudio   QuestionType = "welsh-audio"
)

var QuestionTypes = []QuestionType{
	QuestionImage,
	QuestionEnglishText,
	QuestionWelshText,
	QuestionEnglishAudio,
	QuestionWelshAudio,
}

func (q QuestionType) IsAudio() bool {
	return q == QuestionEnglishAudio || q == QuestionWelshAudio
}

// Language of the text or audio shown by the question. Image questions have none.
func (q QuestionType) Language() Language {
	switch q {
	case QuestionEnglishText, QuestionEnglishAudio:
		return LanguageEnglish
	case QuestionWelshText, QuestionWelshAudio:
		return LanguageWelsh
	}
	return ""
}

type AnswerType string

const (
	AnswerWelshText   AnswerType = "welsh-text"
	AnswerEnglishText AnswerType = "english-text"
	AnswerImage       AnswerType = "image"
)

func (a AnswerType) Language() Language {
	switch a {
	case AnswerWelshText:
		return LanguageWelsh
	case AnswerEnglishText:
		return LanguageEnglish
	}
	return ""
}

// Question is one drawn item. QuestionType and AnswerType are only set in
// mixed mode; standard modes take them from the session mode.
type Question struct {
	Item         VocabularyItem
	QuestionType QuestionType
	AnswerType   AnswerType
}

// RenderedOption is an answer choice as it was displayed, keeping the id of
// the item it was rendered from.
type RenderedOption struct {
	Index   int
	ItemID  string
	Display string
	Type    AnswerType
}

type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

type Evaluation struct {
	Correct  bool
	Selected int
	Marks    []Mark
}

type Settings struct {
	Mode               Mode `validate:"required"`
	Difficulty         int  `validate:"min=1,max=20"`
	QuestionCount      int  `validate:"min=1,max=100"`
	PreferPrimaryText  bool
	PreferPrimaryMedia bool
}

type Progress struct {
	Current int
	Total   int
	Score   int
}

type ElapsedTime struct {
	Minutes string
	Seconds string
}

func (e ElapsedTime) String() string {
	return e.Minutes + ":" + e.Seconds
}

type Result struct {
	Score    int
	Total    int
	Elapsed  ElapsedTime
	Started  time.Time
	Finished time.Time
}
