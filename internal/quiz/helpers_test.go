package quiz

import (
	"fmt"
	"math/rand"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// scriptedRand replays fixed values and falls back to zero when it runs dry.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func item(id string) models.VocabularyItem {
	return models.VocabularyItem{
		ID:           id,
		English:      id + "-en",
		Welsh:        id + "-cy",
		EnglishTexts: []string{id + "-en", id + "-en-alt"},
		WelshTexts:   []string{id + "-cy", id + "-cy-alt"},
		Images:       []string{"/assets/test/" + id + "/images/1.jpg", "/assets/test/" + id + "/images/2.jpg"},
		EnglishAudio: []string{"/assets/test/" + id + "/english_audio/1.mp3"},
		WelshAudio:   []string{"/assets/test/" + id + "/welsh_audio/1.mp3", "/assets/test/" + id + "/welsh_audio/2.mp3"},
	}
}

func pool(n int) []models.VocabularyItem {
	items := make([]models.VocabularyItem, n)
	for i := range items {
		items[i] = item(fmt.Sprintf("item-%d", i))
	}
	return items
}
