package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/pkg/validator"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMediaNotSupported = errors.New("media files are not managed by this store")
)

// EditorI changes stored vocabulary. Implementations wrap the models
// sentinels for unknown, duplicate and invalid records.
type EditorI interface {
	CreateCategory(ctx context.Context, category models.Category) error
	RenameCategory(ctx context.Context, categoryID, name string) error
	DeleteCategory(ctx context.Context, categoryID string) error
	CreateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error
	UpdateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error
	DeleteItem(ctx context.Context, categoryID, itemID string) error
}

// MediaStoreI keeps the pictures and recordings of items.
type MediaStoreI interface {
	SaveMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string, r io.Reader) (string, error)
	DeleteMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string) error
}

type CategoryInput struct {
	ID   string `json:"id" validate:"required,identifier"`
	Name string `json:"name" validate:"required,max=100"`
}

type ItemInput struct {
	ID           string   `json:"id" validate:"required,identifier"`
	Welsh        string   `json:"welsh" validate:"required"`
	EnglishTexts []string `json:"englishTexts"`
	WelshTexts   []string `json:"welshTexts"`
}

type VariationsInput struct {
	EnglishTexts []string `json:"englishTexts" validate:"min=1"`
	WelshTexts   []string `json:"welshTexts" validate:"min=1"`
}

type EditorS struct {
	editor EditorI
	media  MediaStoreI
	log    *zap.Logger
}

// NewEditorService manages vocabulary through editor. media is nil for
// stores that only keep media paths.
func NewEditorService(editor EditorI, media MediaStoreI, log *zap.Logger) *EditorS {
	return &EditorS{
		editor: editor,
		media:  media,
		log:    log,
	}
}

func (e *EditorS) MediaSupported() bool {
	return e.media != nil
}

func (e *EditorS) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	in.ID = strings.ToLower(strings.TrimSpace(in.ID))
	in.Name = strings.TrimSpace(in.Name)
	if err := validator.ValidateStruct(in); err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category := models.Category{ID: in.ID, Name: in.Name}
	if err := e.editor.CreateCategory(ctx, category); err != nil {
		return models.Category{}, err
	}

	e.log.Info("category created", zap.String("category", category.ID))
	return category, nil
}

func (e *EditorS) RenameCategory(ctx context.Context, categoryID, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	if err := e.editor.RenameCategory(ctx, categoryID, name); err != nil {
		return models.Category{}, err
	}

	e.log.Info("category renamed", zap.String("category", categoryID))
	return models.Category{ID: categoryID, Name: name}, nil
}

func (e *EditorS) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := e.editor.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	e.log.Info("category deleted", zap.String("category", categoryID))
	return nil
}

// CreateItem adds an item. The item id (dashes read as spaces) and the welsh
// word are always among the word forms, first unless already listed.
func (e *EditorS) CreateItem(ctx context.Context, categoryID string, in ItemInput) (models.VocabularyItem, error) {
	in.ID = strings.ToLower(strings.TrimSpace(in.ID))
	in.Welsh = strings.TrimSpace(in.Welsh)
	if err := validator.ValidateStruct(in); err != nil {
		return models.VocabularyItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	english := withPrimary(cleanTexts(in.EnglishTexts), strings.ReplaceAll(in.ID, "-", " "))
	welsh := withPrimary(cleanTexts(in.WelshTexts), in.Welsh)

	item := models.VocabularyItem{
		ID:           in.ID,
		English:      english[0],
		Welsh:        welsh[0],
		EnglishTexts: english,
		WelshTexts:   welsh,
	}
	if err := e.editor.CreateItem(ctx, categoryID, item); err != nil {
		return models.VocabularyItem{}, err
	}

	e.log.Info("item created", zap.String("category", categoryID), zap.String("item", item.ID))
	return item, nil
}

// UpdateItem replaces the word forms of an item; both languages need at
// least one form.
func (e *EditorS) UpdateItem(ctx context.Context, categoryID, itemID string, in VariationsInput) (models.VocabularyItem, error) {
	in.EnglishTexts = cleanTexts(in.EnglishTexts)
	in.WelshTexts = cleanTexts(in.WelshTexts)
	if err := validator.ValidateStruct(in); err != nil {
		return models.VocabularyItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := models.VocabularyItem{
		ID:           itemID,
		English:      in.EnglishTexts[0],
		Welsh:        in.WelshTexts[0],
		EnglishTexts: in.EnglishTexts,
		WelshTexts:   in.WelshTexts,
	}
	if err := e.editor.UpdateItem(ctx, categoryID, item); err != nil {
		return models.VocabularyItem{}, err
	}

	e.log.Info("item updated", zap.String("category", categoryID), zap.String("item", itemID))
	return item, nil
}

func (e *EditorS) DeleteItem(ctx context.Context, categoryID, itemID string) error {
	if err := e.editor.DeleteItem(ctx, categoryID, itemID); err != nil {
		return err
	}

	e.log.Info("item deleted", zap.String("category", categoryID), zap.String("item", itemID))
	return nil
}

func (e *EditorS) SaveMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string, r io.Reader) (string, error) {
	if e.media == nil {
		return "", ErrMediaNotSupported
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown media kind %q", ErrInvalidInput, kind)
	}

	published, err := e.media.SaveMedia(ctx, categoryID, itemID, kind, name, r)
	if err != nil {
		return "", err
	}

	e.log.Info("media saved", zap.String("path", published))
	return published, nil
}

func (e *EditorS) DeleteMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string) error {
	if e.media == nil {
		return ErrMediaNotSupported
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown media kind %q", ErrInvalidInput, kind)
	}

	if err := e.media.DeleteMedia(ctx, categoryID, itemID, kind, name); err != nil {
		return err
	}

	e.log.Info("media deleted",
		zap.String("category", categoryID),
		zap.String("item", itemID),
		zap.String("file", name),
	)
	return nil
}

func cleanTexts(texts []string) []string {
	cleaned := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}

func withPrimary(texts []string, primary string) []string {
	for _, t := range texts {
		if t == primary {
			return texts
		}
	}
	return append([]string{primary}, texts...)
}
