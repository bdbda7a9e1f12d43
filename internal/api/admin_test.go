package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZoVoS/welsh-advanced/internal/assets"
	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminRouter(t *testing.T, withMedia bool) (http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	store := assets.NewStore(dir)

	var media service.MediaStoreI
	if withMedia {
		media = store
	}
	editor := service.NewEditorService(store, media, zap.NewNop())

	return NewRouter(store, Options{AssetsDir: dir, Editor: editor}, zap.NewNop()), dir
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func upload(t *testing.T, router http.Handler, target, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_adminCategories(t *testing.T) {
	t.Parallel()

	router, dir := newAdminRouter(t, true)

	rec := serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Animals"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"animals","name":"Animals"}`, rec.Body.String())
	assert.DirExists(t, filepath.Join(dir, "animals"))

	rec = serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Again"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(router, http.MethodPost, "/api/admin/categories", `{"id":"farm animals","name":"Farm"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPost, "/api/admin/categories", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())

	rec = serve(router, http.MethodPut, "/api/admin/categories/animals", `{"name":"Anifeiliaid"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/api/categories", "")
	assert.JSONEq(t, `[{"id":"animals","name":"Anifeiliaid"}]`, rec.Body.String())

	rec = serve(router, http.MethodPut, "/api/admin/categories/plants", `{"name":"Plants"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid category"}`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoDirExists(t, filepath.Join(dir, "animals"))

	rec = serve(router, http.MethodGet, "/api/category/animals/items", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_adminItems(t *testing.T) {
	t.Parallel()

	router, dir := newAdminRouter(t, true)
	require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Animals"}`).Code)

	rec := serve(router, http.MethodPost, "/api/admin/categories/animals/items", `{"id":"cat","welsh":"cath","englishTexts":["kitty"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.VocabularyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, []string{"cat", "kitty"}, created.EnglishTexts)
	assert.Equal(t, []string{"cath"}, created.WelshTexts)

	rec = serve(router, http.MethodPost, "/api/admin/categories/animals/items", `{"id":"cat","welsh":"cath"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(router, http.MethodPost, "/api/admin/categories/plants/items", `{"id":"oak","welsh":"derwen"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodPost, "/api/admin/categories/animals/items", `{"id":"dog"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPut, "/api/admin/categories/animals/items/cat", `{"englishTexts":["cat"],"welshTexts":["cath","pws"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPut, "/api/admin/categories/animals/items/cat", `{"englishTexts":["cat"],"welshTexts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPut, "/api/admin/categories/animals/items/cow", `{"englishTexts":["cow"],"welshTexts":["buwch"]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid item"}`, rec.Body.String())

	// the quiz sees the edited item with a placeholder picture
	rec = serve(router, http.MethodGet, "/api/category/animals/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.VocabularyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "cath", items[0].Welsh)
	assert.Equal(t, []string{"cath", "pws"}, items[0].WelshTexts)
	assert.Equal(t, []string{"/assets/animals/cat/images/placeholder.jpg"}, items[0].Images)

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals/items/cat", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoDirExists(t, filepath.Join(dir, "animals", "cat"))

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals/items/cat", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_adminMedia(t *testing.T) {
	t.Parallel()

	router, dir := newAdminRouter(t, true)
	require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Animals"}`).Code)
	require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/admin/categories/animals/items", `{"id":"cat","welsh":"cath"}`).Code)

	rec := upload(t, router, "/api/admin/categories/animals/items/cat/images", "my cat.JPG", "jpeg bytes")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"path":"/assets/animals/cat/images/my_cat.JPG"}`, rec.Body.String())
	data, err := os.ReadFile(filepath.Join(dir, "animals", "cat", "images", "my_cat.JPG"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	// the same name again is kept next to the first
	rec = upload(t, router, "/api/admin/categories/animals/items/cat/images", "my cat.JPG", "other")
	require.Equal(t, http.StatusCreated, rec.Code)
	var second uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.NotEqual(t, "/assets/animals/cat/images/my_cat.JPG", second.Path)
	assert.True(t, strings.HasPrefix(second.Path, "/assets/animals/cat/images/my_cat_"))

	rec = upload(t, router, "/api/admin/categories/animals/items/cat/welsh_audio", "../../cath.mp3", "mp3")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"path":"/assets/animals/cat/welsh_audio/cath.mp3"}`, rec.Body.String())

	rec = upload(t, router, "/api/admin/categories/animals/items/cat/images", "notes.txt", "text")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, router, "/api/admin/categories/animals/items/cat/video", "cat.mp4", "mp4")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, router, "/api/admin/categories/animals/items/dog/images", "dog.jpg", "jpg")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// uploaded files replace the placeholder in the quiz data
	rec = serve(router, http.MethodGet, "/api/category/animals/items", "")
	var items []models.VocabularyItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Len(t, items[0].Images, 2)
	assert.Equal(t, []string{"/assets/animals/cat/welsh_audio/cath.mp3"}, items[0].WelshAudio)

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals/items/cat/welsh_audio/cath.mp3", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoFileExists(t, filepath.Join(dir, "animals", "cat", "welsh_audio", "cath.mp3"))

	rec = serve(router, http.MethodDelete, "/api/admin/categories/animals/items/cat/welsh_audio/cath.mp3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"File not found"}`, rec.Body.String())
}

func TestRouter_adminWithoutMedia(t *testing.T) {
	t.Parallel()

	router, _ := newAdminRouter(t, false)
	require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Animals"}`).Code)
	require.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/admin/categories/animals/items", `{"id":"cat","welsh":"cath"}`).Code)

	rec := upload(t, router, "/api/admin/categories/animals/items/cat/images", "cat.jpg", "jpg")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestRouter_adminDisabled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	router := NewRouter(assets.NewStore(dir), Options{AssetsDir: dir}, zap.NewNop())

	rec := serve(router, http.MethodPost, "/api/admin/categories", `{"id":"animals","name":"Animals"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoDirExists(t, filepath.Join(dir, "animals"))
}
