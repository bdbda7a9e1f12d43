package service

import (
	"fmt"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/quiz"
	"github.com/ZoVoS/welsh-advanced/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuizS struct {
	newRand func() quiz.Rand
	now     func() time.Time
	log     *zap.Logger
}

func NewQuizService(log *zap.Logger) *QuizS {
	return &QuizS{
		newRand: func() quiz.Rand { return quiz.NewRand() },
		now:     time.Now,
		log:     log,
	}
}

// NewSession validates the settings and builds an unstarted session over
// the given pool.
func (q *QuizS) NewSession(settings models.Settings, pool []models.VocabularyItem) (*quiz.Session, error) {
	if err := validator.ValidateStruct(settings); err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrInvalidSettings, err)
	}

	session, err := quiz.NewSession(uuid.NewString(), settings, pool, q.newRand(), q.now)
	if err != nil {
		q.log.Warn("failed to create session",
			zap.String("mode", string(settings.Mode)),
			zap.Int("items", len(pool)),
			zap.Error(err),
		)
		return nil, err
	}

	q.log.Info("session created",
		zap.String("session", session.ID()),
		zap.String("mode", string(settings.Mode)),
		zap.Int("difficulty", settings.Difficulty),
		zap.Int("questions", settings.QuestionCount),
		zap.Int("items", len(pool)),
	)

	return session, nil
}
