package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/evidenca/internal/registry"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// resultError writes a registry failure as {"err": code, "error": message}.
func resultError(w http.ResponseWriter, err error) {
	code := registry.Code(err)
	message := err.Error()
	if code == http.StatusServiceUnavailable {
		message = "storage unavailable"
	}
	jsonResponse(w, code, map[string]any{"err": code, "error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// pathID parses the {id} path value. Only a non-numeric value is rejected.
// An integer that cannot name a record, zero, negative or out of range, is
// passed on as an id no record has, so lookups answer not found.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, true
	}
	return id, err == nil
}
