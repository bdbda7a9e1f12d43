package service

import (
	"context"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"go.uber.org/zap"
)

type VocabularyS struct {
	provider ProviderI
	log      *zap.Logger
}

func NewVocabularyService(provider ProviderI, log *zap.Logger) *VocabularyS {
	return &VocabularyS{
		provider: provider,
		log:      log,
	}
}

// Categories never fails: a provider error is logged and reported as an
// empty list.
func (v *VocabularyS) Categories(ctx context.Context) []models.Category {
	categories, err := v.provider.Categories(ctx)
	if err != nil {
		v.log.Error("failed to load categories", zap.Error(err))
		return []models.Category{}
	}

	return categories
}

// Items returns the usable items of a category. Provider errors and items
// without an id or a welsh form count as no items.
func (v *VocabularyS) Items(ctx context.Context, categoryID string) []models.VocabularyItem {
	items, err := v.provider.Items(ctx, categoryID)
	if err != nil {
		v.log.Error("failed to load items", zap.String("category", categoryID), zap.Error(err))
		return []models.VocabularyItem{}
	}

	usable := make([]models.VocabularyItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" || item.Welsh == "" {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			v.log.Warn("duplicate item id", zap.String("category", categoryID), zap.String("item", item.ID))
			continue
		}
		seen[item.ID] = struct{}{}
		usable = append(usable, item)
	}

	v.log.Debug("items loaded", zap.String("category", categoryID), zap.Int("count", len(usable)))

	return usable
}
