package cache

import (
	"sync"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
)

// Setup is a quiz being configured through the bot dialogue.
type Setup struct {
	ChatID     int64
	MessageID  int
	Categories []models.Category
	Category   models.Category
	Pool       []models.VocabularyItem
	Settings   models.Settings
}

// CategoryName returns the display name of a listed category.
func (s Setup) CategoryName(id string) (string, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// Game is a running quiz and the chat messages that show it.
type Game struct {
	ChatID            int64
	Session           *quiz.Session
	Category          models.Category
	Pool              []models.VocabularyItem
	StatusMessageID   int
	QuestionMessageID int
}

type Cache struct {
	mu     sync.Mutex
	setups map[int64]Setup
	games  map[int64]*Game
}

func NewCache() *Cache {
	return &Cache{
		setups: make(map[int64]Setup),
		games:  make(map[int64]*Game),
	}
}

func (c *Cache) SetSetup(userID int64, setup Setup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setups[userID] = setup
}

func (c *Cache) GetSetup(userID int64) (Setup, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setup, exists := c.setups[userID]
	return setup, exists
}

func (c *Cache) DeleteSetup(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.setups, userID)
}

// SetGame stores the user's game and returns the one it replaced, if any.
func (c *Cache) SetGame(userID int64, game *Game) (*Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, exists := c.games[userID]
	c.games[userID] = game
	return prev, exists
}

func (c *Cache) GetGame(userID int64) (*Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	game, exists := c.games[userID]
	return game, exists
}

func (c *Cache) DeleteGame(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.games, userID)
}

// Games returns a snapshot of every stored game keyed by user.
func (c *Cache) Games() map[int64]*Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	games := make(map[int64]*Game, len(c.games))
	for userID, game := range c.games {
		games[userID] = game
	}
	return games
}
