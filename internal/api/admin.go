package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	maxJSONBody      = 1 << 20
	defaultMaxUpload = 10 << 20

	msgInvalidItem = "Invalid item"
)

// MountAdmin registers the vocabulary management routes on r:
//
//	POST   /categories
//	PUT    /categories/{categoryID}
//	DELETE /categories/{categoryID}
//	POST   /categories/{categoryID}/items
//	PUT    /categories/{categoryID}/items/{itemID}
//	DELETE /categories/{categoryID}/items/{itemID}
//	POST   /categories/{categoryID}/items/{itemID}/{kind}
//	DELETE /categories/{categoryID}/items/{itemID}/{kind}/{fileName}
func MountAdmin(r chi.Router, editor *service.EditorS, maxUpload int64, log *zap.Logger) {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}

	r.Post("/categories", CreateCategoryHandler(editor, log))
	r.Route("/categories/{categoryID}", func(cr chi.Router) {
		cr.Put("/", RenameCategoryHandler(editor, log))
		cr.Delete("/", DeleteCategoryHandler(editor, log))
		cr.Post("/items", CreateItemHandler(editor, log))
		cr.Route("/items/{itemID}", func(ir chi.Router) {
			ir.Put("/", UpdateItemHandler(editor, log))
			ir.Delete("/", DeleteItemHandler(editor, log))
			ir.Post("/{kind}", UploadMediaHandler(editor, maxUpload, log))
			ir.Delete("/{kind}/{fileName}", DeleteMediaHandler(editor, log))
		})
	})
}

func CreateCategoryHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.CategoryInput
		if !decodeJSON(w, r, &in) {
			return
		}

		category, err := editor.CreateCategory(r.Context(), in)
		if err != nil {
			writeEditError(w, log, err, "Failed to create category")
			return
		}

		writeJSON(w, http.StatusCreated, category)
	}
}

type renameRequest struct {
	Name string `json:"name"`
}

func RenameCategoryHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in renameRequest
		if !decodeJSON(w, r, &in) {
			return
		}

		category, err := editor.RenameCategory(r.Context(), chi.URLParam(r, "categoryID"), in.Name)
		if err != nil {
			writeEditError(w, log, err, "Failed to rename category")
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}

func DeleteCategoryHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := editor.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			writeEditError(w, log, err, "Failed to delete category")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateItemHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.ItemInput
		if !decodeJSON(w, r, &in) {
			return
		}

		item, err := editor.CreateItem(r.Context(), chi.URLParam(r, "categoryID"), in)
		if err != nil {
			writeEditError(w, log, err, "Failed to create item")
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

func UpdateItemHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in service.VariationsInput
		if !decodeJSON(w, r, &in) {
			return
		}

		item, err := editor.UpdateItem(r.Context(), chi.URLParam(r, "categoryID"), chi.URLParam(r, "itemID"), in)
		if err != nil {
			writeEditError(w, log, err, "Failed to update item")
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func DeleteItemHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := editor.DeleteItem(r.Context(), chi.URLParam(r, "categoryID"), chi.URLParam(r, "itemID"))
		if err != nil {
			writeEditError(w, log, err, "Failed to delete item")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type uploadResponse struct {
	Path string `json:"path"`
}

// UploadMediaHandler takes a multipart form with the file in field "file".
func UploadMediaHandler(editor *service.EditorS, maxUpload int64, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid upload")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No file selected")
			return
		}
		defer file.Close()

		published, err := editor.SaveMedia(r.Context(),
			chi.URLParam(r, "categoryID"),
			chi.URLParam(r, "itemID"),
			models.MediaKind(chi.URLParam(r, "kind")),
			header.Filename,
			file,
		)
		if err != nil {
			writeEditError(w, log, err, "Failed to save file")
			return
		}

		writeJSON(w, http.StatusCreated, uploadResponse{Path: published})
	}
}

func DeleteMediaHandler(editor *service.EditorS, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := editor.DeleteMedia(r.Context(),
			chi.URLParam(r, "categoryID"),
			chi.URLParam(r, "itemID"),
			models.MediaKind(chi.URLParam(r, "kind")),
			chi.URLParam(r, "fileName"),
		)
		if err != nil {
			writeEditError(w, log, err, "Failed to delete file")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func writeEditError(w http.ResponseWriter, log *zap.Logger, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, models.ErrUnsupportedMedia):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrUnknownCategory):
		writeError(w, http.StatusNotFound, msgInvalidCategory)
	case errors.Is(err, models.ErrUnknownItem):
		writeError(w, http.StatusNotFound, msgInvalidItem)
	case errors.Is(err, models.ErrUnknownMedia):
		writeError(w, http.StatusNotFound, "File not found")
	case errors.Is(err, models.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMediaNotSupported):
		writeError(w, http.StatusNotImplemented, err.Error())
	default:
		log.Error(msg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, msg)
	}
}
