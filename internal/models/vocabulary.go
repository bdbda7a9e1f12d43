package models

import "errors"

// Errors wrapped by every vocabulary store so callers can tell them apart
// without knowing the store.
var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnknownMedia     = errors.New("unknown media file")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUnsupportedMedia = errors.New("unsupported media file")
)

// MediaKind names one media collection of an item.
type MediaKind string

const (
	MediaImage        MediaKind = "images"
	MediaEnglishAudio MediaKind = "english_audio"
	MediaWelshAudio   MediaKind = "welsh_audio"
)

func (k MediaKind) Valid() bool {
	switch k {
	case MediaImage, MediaEnglishAudio, MediaWelshAudio:
		return true
	}
	return false
}

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageWelsh   Language = "welsh"
)

type Category struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// VocabularyItem is a learnable english/welsh pair. When a variant slice is
// non-empty its first element is the primary form.
type VocabularyItem struct {
	ID           string   `json:"id"`
	English      string   `json:"english"`
	Welsh        string   `json:"welsh"`
	EnglishTexts []string `json:"englishTexts"`
	WelshTexts   []string `json:"welshTexts"`
	Images       []string `json:"images"`
	EnglishAudio []string `json:"englishAudio"`
	WelshAudio   []string `json:"welshAudio"`
}

func (v VocabularyItem) Texts(lang Language) []string {
	if lang == LanguageWelsh {
		return v.WelshTexts
	}
	return v.EnglishTexts
}

func (v VocabularyItem) Text(lang Language) string {
	if lang == LanguageWelsh {
		return v.Welsh
	}
	return v.English
}

func (v VocabularyItem) Audio(lang Language) []string {
	if lang == LanguageWelsh {
		return v.WelshAudio
	}
	return v.EnglishAudio
}
