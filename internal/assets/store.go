package assets

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/ZoVoS/welsh-advanced/internal/models"
)

const (
	categoriesFile = "categories.json"
	englishFile    = "english.txt"
	welshFile      = "welsh.txt"
	imagesDir      = "images"
	englishDir     = "english_audio"
	welshDir       = "welsh_audio"

	// URLPrefix is the path under which media files are published.
	URLPrefix = "/assets/"
)

var (
	ErrInvalidCategory = fmt.Errorf("invalid category: %w", models.ErrUnknownCategory)
	ErrInvalidItem     = fmt.Errorf("invalid item: %w", models.ErrUnknownItem)

	identifier = regexp.MustCompile(`^[a-z0-9-]+$`)

	imageExts = []string{".jpg", ".jpeg", ".png", ".gif"}
	audioExts = []string{".mp3", ".wav"}
)

// Store reads vocabulary from a directory laid out as
// <dir>/categories.json and <dir>/<category>/<item>/{english.txt,welsh.txt,images,english_audio,welsh_audio}.
type Store struct {
	dir string
	// mu serialises writes to categories.json
	mu sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

type categoriesDoc struct {
	Categories []models.Category `json:"categories"`
}

// Categories lists categories.json. A missing or broken file means no categories.
func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, categoriesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Category{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	var doc categoriesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return []models.Category{}, nil
	}
	if doc.Categories == nil {
		doc.Categories = []models.Category{}
	}

	return doc.Categories, nil
}

func ValidIdentifier(id string) bool {
	return identifier.MatchString(id)
}

// Items reads every item directory of a category that has a non-empty
// welsh.txt, sorted by item id.
func (s *Store) Items(ctx context.Context, categoryID string) ([]models.VocabularyItem, error) {
	if !ValidIdentifier(categoryID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}

	categoryDir := filepath.Join(s.dir, categoryID)
	entries, err := os.ReadDir(categoryDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category %s: %w", categoryID, err)
	}

	items := make([]models.VocabularyItem, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		item, ok, err := s.readItem(categoryID, entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (s *Store) readItem(categoryID, itemID string) (models.VocabularyItem, bool, error) {
	itemDir := filepath.Join(s.dir, categoryID, itemID)

	welshTexts, err := readLines(filepath.Join(itemDir, welshFile))
	if errors.Is(err, fs.ErrNotExist) {
		return models.VocabularyItem{}, false, nil
	}
	if err != nil {
		return models.VocabularyItem{}, false, fmt.Errorf("failed to read %s/%s: %w", categoryID, itemID, err)
	}
	if len(welshTexts) == 0 {
		return models.VocabularyItem{}, false, nil
	}

	englishTexts, err := readLines(filepath.Join(itemDir, englishFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return models.VocabularyItem{}, false, fmt.Errorf("failed to read %s/%s: %w", categoryID, itemID, err)
	}

	english := strings.ReplaceAll(itemID, "_", " ")
	if len(englishTexts) > 0 {
		english = englishTexts[0]
	} else {
		englishTexts = []string{english}
	}

	return models.VocabularyItem{
		ID:           itemID,
		English:      english,
		Welsh:        welshTexts[0],
		EnglishTexts: englishTexts,
		WelshTexts:   welshTexts,
		Images:       s.media(categoryID, itemID, imagesDir, imageExts, "placeholder.jpg"),
		EnglishAudio: s.media(categoryID, itemID, englishDir, audioExts, "placeholder.mp3"),
		WelshAudio:   s.media(categoryID, itemID, welshDir, audioExts, "placeholder.mp3"),
	}, true, nil
}

// media lists published paths of the files in one media directory. An empty
// directory yields a single placeholder path.
func (s *Store) media(categoryID, itemID, kind string, exts []string, placeholder string) []string {
	base := path.Join(URLPrefix, categoryID, itemID, kind)

	var paths []string
	entries, _ := os.ReadDir(filepath.Join(s.dir, categoryID, itemID, kind))
	for _, entry := range entries {
		if entry.IsDir() || !hasExt(entry.Name(), exts) {
			continue
		}
		paths = append(paths, path.Join(base, entry.Name()))
	}

	if len(paths) == 0 {
		return []string{path.Join(base, placeholder)}
	}
	return paths
}

// Local maps a published /assets/ path to its location on disk.
func (s *Store) Local(published string) (string, bool) {
	if !strings.HasPrefix(published, URLPrefix) {
		return "", false
	}
	rel := path.Clean("/" + strings.TrimPrefix(published, URLPrefix))
	return filepath.Join(s.dir, filepath.FromSlash(rel)), true
}

func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
