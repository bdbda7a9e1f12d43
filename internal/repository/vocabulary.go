package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/lib/pq"
)

var (
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", models.ErrUnknownCategory)
	ErrItemNotFound     = fmt.Errorf("item not found: %w", models.ErrUnknownItem)
)

type VocabularyR struct {
	db QueryI
}

func NewVocabularyRepository(db QueryI) *VocabularyR {
	return &VocabularyR{
		db: db,
	}
}

type itemRow struct {
	ID           string         `db:"id"`
	English      string         `db:"english"`
	Welsh        string         `db:"welsh"`
	EnglishTexts pq.StringArray `db:"english_texts"`
	WelshTexts   pq.StringArray `db:"welsh_texts"`
	Images       pq.StringArray `db:"images"`
	EnglishAudio pq.StringArray `db:"english_audio"`
	WelshAudio   pq.StringArray `db:"welsh_audio"`
}

func (r itemRow) toModel() models.VocabularyItem {
	return models.VocabularyItem{
		ID:           r.ID,
		English:      r.English,
		Welsh:        r.Welsh,
		EnglishTexts: []string(r.EnglishTexts),
		WelshTexts:   []string(r.WelshTexts),
		Images:       []string(r.Images),
		EnglishAudio: []string(r.EnglishAudio),
		WelshAudio:   []string(r.WelshAudio),
	}
}

func (v *VocabularyR) Categories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name, id`

	var categories []models.Category
	if err := v.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

func (v *VocabularyR) Category(ctx context.Context, categoryID string) (models.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`

	var category models.Category
	err := v.db.GetContext(ctx, &category, query, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}

// Items returns the vocabulary of a category ordered by item id.
func (v *VocabularyR) Items(ctx context.Context, categoryID string) ([]models.VocabularyItem, error) {
	if _, err := v.Category(ctx, categoryID); err != nil {
		return nil, err
	}

	query := `SELECT id, english, welsh, english_texts, welsh_texts, images, english_audio, welsh_audio
		FROM vocabulary_items
		WHERE category_id = $1
		ORDER BY id`

	var rows []itemRow
	if err := v.db.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, err
	}

	items := make([]models.VocabularyItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}

	return items, nil
}

func (v *VocabularyR) AddCategory(ctx context.Context, category models.Category) error {
	query := `
        INSERT INTO categories (id, name)
        VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
    `

	_, err := v.db.ExecContext(ctx, query, category.ID, category.Name)
	if err != nil {
		return err
	}

	return nil
}

func (v *VocabularyR) AddItem(ctx context.Context, categoryID string, item models.VocabularyItem) error {
	query := `
        INSERT INTO vocabulary_items
            (category_id, id, english, welsh, english_texts, welsh_texts, images, english_audio, welsh_audio)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (category_id, id) DO UPDATE SET
            english = EXCLUDED.english,
            welsh = EXCLUDED.welsh,
            english_texts = EXCLUDED.english_texts,
            welsh_texts = EXCLUDED.welsh_texts,
            images = EXCLUDED.images,
            english_audio = EXCLUDED.english_audio,
            welsh_audio = EXCLUDED.welsh_audio
    `

	_, err := v.db.ExecContext(ctx, query,
		categoryID,
		item.ID,
		item.English,
		item.Welsh,
		pq.Array(nonNil(item.EnglishTexts)),
		pq.Array(nonNil(item.WelshTexts)),
		pq.Array(nonNil(item.Images)),
		pq.Array(nonNil(item.EnglishAudio)),
		pq.Array(nonNil(item.WelshAudio)),
	)
	if err != nil {
		return err
	}

	return nil
}

// CreateCategory inserts a new category. Unlike AddCategory it never
// overwrites an existing one.
func (v *VocabularyR) CreateCategory(ctx context.Context, category models.Category) error {
	query := `
        INSERT INTO categories (id, name)
        VALUES ($1, $2)
        ON CONFLICT (id) DO NOTHING
    `

	res, err := v.db.ExecContext(ctx, query, category.ID, category.Name)
	if err != nil {
		return fmt.Errorf("failed create category: %w", err)
	}

	return expectRow(res, fmt.Errorf("category %s %w", category.ID, models.ErrAlreadyExists))
}

func (v *VocabularyR) RenameCategory(ctx context.Context, categoryID, name string) error {
	query := `UPDATE categories SET name = $2 WHERE id = $1`

	res, err := v.db.ExecContext(ctx, query, categoryID, name)
	if err != nil {
		return fmt.Errorf("failed rename category: %w", err)
	}

	return expectRow(res, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID))
}

// DeleteCategory removes a category; its items go with it through the
// foreign key cascade.
func (v *VocabularyR) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE id = $1`

	res, err := v.db.ExecContext(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed delete category: %w", err)
	}

	return expectRow(res, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID))
}

func (v *VocabularyR) CreateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error {
	if _, err := v.Category(ctx, categoryID); err != nil {
		return err
	}

	query := `
        INSERT INTO vocabulary_items
            (category_id, id, english, welsh, english_texts, welsh_texts, images, english_audio, welsh_audio)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (category_id, id) DO NOTHING
    `

	res, err := v.db.ExecContext(ctx, query,
		categoryID,
		item.ID,
		item.English,
		item.Welsh,
		pq.Array(nonNil(item.EnglishTexts)),
		pq.Array(nonNil(item.WelshTexts)),
		pq.Array(nonNil(item.Images)),
		pq.Array(nonNil(item.EnglishAudio)),
		pq.Array(nonNil(item.WelshAudio)),
	)
	if err != nil {
		return fmt.Errorf("failed create item: %w", err)
	}

	return expectRow(res, fmt.Errorf("item %s/%s %w", categoryID, item.ID, models.ErrAlreadyExists))
}

// UpdateItem replaces the word forms of an item and leaves its media alone.
func (v *VocabularyR) UpdateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error {
	query := `
        UPDATE vocabulary_items
        SET english = $3, welsh = $4, english_texts = $5, welsh_texts = $6
        WHERE category_id = $1 AND id = $2
    `

	res, err := v.db.ExecContext(ctx, query,
		categoryID,
		item.ID,
		item.English,
		item.Welsh,
		pq.Array(nonNil(item.EnglishTexts)),
		pq.Array(nonNil(item.WelshTexts)),
	)
	if err != nil {
		return fmt.Errorf("failed update item: %w", err)
	}

	return expectRow(res, fmt.Errorf("%w: %s/%s", ErrItemNotFound, categoryID, item.ID))
}

func (v *VocabularyR) DeleteItem(ctx context.Context, categoryID, itemID string) error {
	query := `DELETE FROM vocabulary_items WHERE category_id = $1 AND id = $2`

	res, err := v.db.ExecContext(ctx, query, categoryID, itemID)
	if err != nil {
		return fmt.Errorf("failed delete item: %w", err)
	}

	return expectRow(res, fmt.Errorf("%w: %s/%s", ErrItemNotFound, categoryID, itemID))
}

// expectRow returns errNone when the statement touched no row.
func expectRow(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed rows affected: %w", err)
	}
	if n == 0 {
		return errNone
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
