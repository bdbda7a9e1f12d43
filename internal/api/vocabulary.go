package api

import (
	"errors"
	"net/http"

	"github.com/ZoVoS/welsh-advanced/internal/assets"
	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgInvalidCategory = "Invalid category"

// GET /api/categories
func CategoriesHandler(provider service.ProviderI, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := provider.Categories(r.Context())
		if err != nil {
			log.Error("failed to list categories", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load categories")
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

// GET /api/category/{categoryID}/items
func ItemsHandler(provider service.ProviderI, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := chi.URLParam(r, "categoryID")
		if !assets.ValidIdentifier(categoryID) {
			writeError(w, http.StatusNotFound, msgInvalidCategory)
			return
		}

		items, err := provider.Items(r.Context(), categoryID)
		if errors.Is(err, models.ErrUnknownCategory) {
			writeError(w, http.StatusNotFound, msgInvalidCategory)
			return
		}
		if err != nil {
			log.Error("failed to list items", zap.String("category", categoryID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load items")
			return
		}
		if items == nil {
			items = []models.VocabularyItem{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}
