package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/evidenca/internal/imaging"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/registry"
	"github.com/erazemk/evidenca/internal/store"
)

// AssetsHandler exposes the asset registry.
type AssetsHandler struct {
	DB       *sql.DB
	Registry *registry.AssetRegistry
}

// Register handles POST /api/assets.
func (h *AssetsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.AssetInput
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	caller := GetClaims(r.Context()).Identity()
	id, err := h.Registry.Register(r.Context(), req, caller)
	if err != nil {
		if registry.Code(err) == http.StatusServiceUnavailable {
			slog.ErrorContext(r.Context(), "failed to register asset", "user", caller, "error", err)
		}
		resultError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "asset registered", "user", caller, "asset_id", id, "asset", req.Name)
	jsonResponse(w, http.StatusCreated, map[string]int64{"ok": id})
}

// Get handles GET /api/assets/{id}.
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.Registry.Get(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get asset", "asset_id", id, "error", err)
		resultError(w, err)
		return
	}
	if asset == nil {
		resultError(w, registry.ErrNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, asset)
}

// Update handles PUT /api/assets/{id}. The body replaces every field.
func (h *AssetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	caller := GetClaims(r.Context()).Identity()

	var req model.AssetInput
	if err := decodeJSON(r, &req); err != nil {
		// Not found and forbidden take precedence over a malformed body.
		if err := h.Registry.AuthorizeUpdate(r.Context(), id, caller); err != nil {
			resultError(w, err)
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Registry.Update(r.Context(), id, req, caller); err != nil {
		if registry.Code(err) == http.StatusServiceUnavailable {
			slog.ErrorContext(r.Context(), "failed to update asset", "asset_id", id, "error", err)
		}
		resultError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "asset updated", "user", caller, "asset_id", id, "available", req.IsAvailable)
	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// Available handles GET /api/assets/{id}/available.
func (h *AssetsHandler) Available(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	available, err := h.Registry.IsAvailable(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to check asset availability", "asset_id", id, "error", err)
		resultError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"available": available})
}

// UploadImage handles PUT /api/assets/{id}/image. Only the owner may set the
// photo; ownership is checked before the upload is read.
func (h *AssetsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	caller := GetClaims(r.Context()).Identity()
	if err := h.Registry.AuthorizeImage(r.Context(), id, caller); err != nil {
		resultError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Normalize(file)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			jsonError(w, http.StatusBadRequest, "image must be JPEG or PNG")
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid image")
		return
	}

	err = h.Registry.SetImage(r.Context(), id, caller, func(ctx context.Context) error {
		return store.SetAssetImage(ctx, h.DB, id, photo.Data, photo.MIME)
	})
	if err != nil {
		if registry.Code(err) == http.StatusServiceUnavailable {
			slog.ErrorContext(r.Context(), "failed to save asset image", "asset_id", id, "error", err)
		}
		resultError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "asset image uploaded", "user", caller, "asset_id", id, "width", photo.Width, "height", photo.Height)
	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// GetImage handles GET /api/assets/{id}/image.
func (h *AssetsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	data, mime, err := store.GetAssetImage(r.Context(), h.DB, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get asset image", "asset_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// GetHistory handles GET /api/assets/{id}/history.
func (h *AssetsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	historyResponse(w, r, h.DB, model.KindAsset)
}

// historyResponse writes the journal of the record named by {id}.
func historyResponse(w http.ResponseWriter, r *http.Request, db *sql.DB, kind string) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid "+kind+" id")
		return
	}

	history, err := store.GetRecordHistory(r.Context(), db, kind, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get record history", "kind", kind, "id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get history")
		return
	}
	if len(history) == 0 {
		resultError(w, registry.ErrNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, history)
}
