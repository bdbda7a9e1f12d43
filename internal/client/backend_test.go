package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *BackendAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewBackendAPI(srv.URL+"/", time.Second)
}

func TestBackendAPI_Categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    []models.Category
		wantErr bool
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `[{"id":"animals","name":"Animals"}]`,
			want:   []models.Category{{ID: "animals", Name: "Animals"}},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":"boom"}`,
			wantErr: true,
		},
		{
			name:    "broken body",
			status:  http.StatusOK,
			body:    `[{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/categories", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			got, err := backend.Categories(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendAPI_Items(t *testing.T) {
	t.Parallel()

	t.Run("fills missing variants", func(t *testing.T) {
		t.Parallel()

		backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/category/animals/items", r.URL.Path)
			_, _ = w.Write([]byte(`[
				{"id":"cat","english":"cat","welsh":"cath","welshTexts":["cath","cath fach"],
				 "images":["/assets/animals/cat/images/cat.jpg"]}
			]`))
		})

		items, err := backend.Items(context.Background(), "animals")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, []string{"cat"}, items[0].EnglishTexts)
		assert.Equal(t, []string{"cath", "cath fach"}, items[0].WelshTexts)
		assert.Equal(t, []string{"/assets/animals/cat/images/cat.jpg"}, items[0].Images)
	})

	t.Run("invalid category", func(t *testing.T) {
		t.Parallel()

		backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Invalid category"}`))
		})

		items, err := backend.Items(context.Background(), "plants")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Nil(t, items)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := backend.Items(ctx, "animals")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
