package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	AssetsDir      string
	AllowedOrigins []string
	Timeout        time.Duration
	// Editor enables the /api/admin management routes when set.
	Editor    *service.EditorS
	MaxUpload int64
}

// NewRouter builds the quiz backend: vocabulary lookups under /api, optional
// management under /api/admin and media files under /assets.
func NewRouter(provider service.ProviderI, opts Options, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(log), middleware.Recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/categories", CategoriesHandler(provider, log))
		ar.Get("/category/{categoryID}/items", ItemsHandler(provider, log))

		if opts.Editor != nil {
			ar.Route("/admin", func(adm chi.Router) {
				MountAdmin(adm, opts.Editor, opts.MaxUpload, log)
			})
		}
	})

	if opts.AssetsDir != "" {
		r.Route("/assets", func(ar chi.Router) {
			MountAssets(ar, opts.AssetsDir)
		})
	}

	return r
}

// MountAssets serves files from dir. Directory listings are not exposed.
func MountAssets(r chi.Router, dir string) {
	files := http.StripPrefix("/assets", http.FileServer(http.Dir(dir)))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
