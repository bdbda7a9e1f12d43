package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/google/uuid"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// CreateCategory creates the category directory and lists it in categories.json.
func (s *Store) CreateCategory(ctx context.Context, category models.Category) error {
	if !ValidIdentifier(category.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categoryDir := filepath.Join(s.dir, category.ID)
	if _, err := os.Stat(categoryDir); err == nil {
		return fmt.Errorf("category %s %w", category.ID, models.ErrAlreadyExists)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return fmt.Errorf("failed to create category %s: %w", category.ID, err)
	}

	return s.saveCategories(append(categories, category))
}

func (s *Store) RenameCategory(ctx context.Context, categoryID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	for i := range categories {
		if categories[i].ID == categoryID {
			categories[i].Name = name
			return s.saveCategories(categories)
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
}

// DeleteCategory removes the category directory with every item in it.
func (s *Store) DeleteCategory(ctx context.Context, categoryID string) error {
	if !ValidIdentifier(categoryID) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID != categoryID {
			kept = append(kept, c)
		}
	}

	categoryDir := filepath.Join(s.dir, categoryID)
	_, statErr := os.Stat(categoryDir)
	if len(kept) == len(categories) && errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}

	if err := os.RemoveAll(categoryDir); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}

	return s.saveCategories(kept)
}

// CreateItem lays out a new item directory with its word lists and empty
// media directories.
func (s *Store) CreateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error {
	categoryDir, err := s.categoryDir(categoryID)
	if err != nil {
		return err
	}
	if !ValidIdentifier(item.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidItem, item.ID)
	}

	itemDir := filepath.Join(categoryDir, item.ID)
	if _, err := os.Stat(itemDir); err == nil {
		return fmt.Errorf("item %s/%s %w", categoryID, item.ID, models.ErrAlreadyExists)
	}

	for _, kind := range []models.MediaKind{models.MediaImage, models.MediaEnglishAudio, models.MediaWelshAudio} {
		if err := os.MkdirAll(filepath.Join(itemDir, string(kind)), 0o755); err != nil {
			return fmt.Errorf("failed to create item %s/%s: %w", categoryID, item.ID, err)
		}
	}

	return writeTexts(itemDir, item)
}

// UpdateItem rewrites the word lists of an item.
func (s *Store) UpdateItem(ctx context.Context, categoryID string, item models.VocabularyItem) error {
	itemDir, err := s.itemDir(categoryID, item.ID)
	if err != nil {
		return err
	}
	return writeTexts(itemDir, item)
}

func (s *Store) DeleteItem(ctx context.Context, categoryID, itemID string) error {
	itemDir, err := s.itemDir(categoryID, itemID)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(itemDir); err != nil {
		return fmt.Errorf("failed to delete item %s/%s: %w", categoryID, itemID, err)
	}
	return nil
}

// SaveMedia stores a picture or recording under a sanitised name and returns
// its published path. A taken name gets a short random suffix.
func (s *Store) SaveMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string, r io.Reader) (string, error) {
	mediaDir, err := s.mediaDir(categoryID, itemID, kind)
	if err != nil {
		return "", err
	}

	name = safeFileName(name)
	exts := audioExts
	if kind == models.MediaImage {
		exts = imageExts
	}
	if name == "" || !hasExt(name, exts) {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedMedia, name)
	}

	if _, err := os.Stat(filepath.Join(mediaDir, name)); err == nil {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6] + ext
	}

	f, err := os.OpenFile(filepath.Join(mediaDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	return path.Join(URLPrefix, categoryID, itemID, string(kind), name), nil
}

func (s *Store) DeleteMedia(ctx context.Context, categoryID, itemID string, kind models.MediaKind, name string) error {
	mediaDir, err := s.mediaDir(categoryID, itemID, kind)
	if err != nil {
		return err
	}

	name = safeFileName(name)
	if name == "" {
		return fmt.Errorf("%w: %q", models.ErrUnknownMedia, name)
	}

	err = os.Remove(filepath.Join(mediaDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", models.ErrUnknownMedia, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

func (s *Store) categoryDir(categoryID string) (string, error) {
	if !ValidIdentifier(categoryID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}
	dir := filepath.Join(s.dir, categoryID)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}
	return dir, nil
}

func (s *Store) itemDir(categoryID, itemID string) (string, error) {
	categoryDir, err := s.categoryDir(categoryID)
	if err != nil {
		return "", err
	}
	if !ValidIdentifier(itemID) {
		return "", fmt.Errorf("%w: %q", ErrInvalidItem, itemID)
	}
	dir := filepath.Join(categoryDir, itemID)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s/%s", ErrInvalidItem, categoryID, itemID)
	}
	return dir, nil
}

func (s *Store) mediaDir(categoryID, itemID string, kind models.MediaKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: kind %q", models.ErrUnsupportedMedia, kind)
	}
	itemDir, err := s.itemDir(categoryID, itemID)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(itemDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return dir, nil
}

func (s *Store) saveCategories(categories []models.Category) error {
	data, err := json.MarshalIndent(categoriesDoc{Categories: categories}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	tmp := filepath.Join(s.dir, categoriesFile+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, categoriesFile)); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

func writeTexts(itemDir string, item models.VocabularyItem) error {
	files := map[string][]string{
		englishFile: item.EnglishTexts,
		welshFile:   item.WelshTexts,
	}
	for name, lines := range files {
		data := strings.Join(lines, "\n")
		if err := os.WriteFile(filepath.Join(itemDir, name), []byte(data), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

// safeFileName keeps the base name with only letters, digits, dots, dashes
// and underscores.
func safeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	return name
}
