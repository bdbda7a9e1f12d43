package service

import (
	"context"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"go.uber.org/zap"
)

// ProviderI is a source of vocabulary: Postgres, the assets directory or a
// remote backend.
type ProviderI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Items(ctx context.Context, categoryID string) ([]models.VocabularyItem, error)
}

type Service struct {
	*VocabularyS
	*QuizS
}

func InitServices(provider ProviderI, log *zap.Logger) *Service {
	return &Service{
		VocabularyS: NewVocabularyService(provider, log),
		QuizS:       NewQuizService(log),
	}
}
