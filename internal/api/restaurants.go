package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/registry"
)

// RestaurantsHandler exposes the restaurant registry.
type RestaurantsHandler struct {
	DB       *sql.DB
	Registry *registry.RestaurantRegistry
}

type verifyRequest struct {
	Verified *bool `json:"verified"`
}

// Register handles POST /api/restaurants. Anyone may register a restaurant.
func (h *RestaurantsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RestaurantInput
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	caller := GetClaims(r.Context()).Identity()
	id, err := h.Registry.Register(r.Context(), req, caller)
	if err != nil {
		if registry.Code(err) == http.StatusServiceUnavailable {
			slog.ErrorContext(r.Context(), "failed to register restaurant", "user", caller, "error", err)
		}
		resultError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "restaurant registered", "user", caller, "restaurant_id", id, "restaurant", req.Name)
	jsonResponse(w, http.StatusCreated, map[string]int64{"ok": id})
}

// Get handles GET /api/restaurants/{id}.
func (h *RestaurantsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	restaurant, err := h.Registry.Get(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to get restaurant", "restaurant_id", id, "error", err)
		resultError(w, err)
		return
	}
	if restaurant == nil {
		resultError(w, registry.ErrNotFound)
		return
	}
	jsonResponse(w, http.StatusOK, restaurant)
}

// Verify handles PUT /api/restaurants/{id}/verification.
func (h *RestaurantsHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	caller := GetClaims(r.Context()).Identity()

	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil || req.Verified == nil {
		if err := h.Registry.AuthorizeVerify(r.Context(), id, caller); err != nil {
			resultError(w, err)
			return
		}
		jsonError(w, http.StatusBadRequest, "verified flag required")
		return
	}

	if err := h.Registry.Verify(r.Context(), id, *req.Verified, caller); err != nil {
		if registry.Code(err) == http.StatusServiceUnavailable {
			slog.ErrorContext(r.Context(), "failed to verify restaurant", "restaurant_id", id, "error", err)
		}
		resultError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "restaurant verification set", "user", caller, "restaurant_id", id, "verified", *req.Verified)
	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// Verified handles GET /api/restaurants/{id}/verified.
func (h *RestaurantsHandler) Verified(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	verified, err := h.Registry.IsVerified(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to check restaurant verification", "restaurant_id", id, "error", err)
		resultError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"verified": verified})
}

// GetHistory handles GET /api/restaurants/{id}/history.
func (h *RestaurantsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	historyResponse(w, r, h.DB, model.KindRestaurant)
}
