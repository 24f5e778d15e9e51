package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes exposes the catalog read-only. It has no dependencies so it
// is a plain function rather than a Handler type.
func RegisterRoutes(r chi.Router) {
	r.Get("/catalog", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, All())
	})
	r.Get("/catalog/{name}", func(w http.ResponseWriter, r *http.Request) {
		s, ok := Lookup(chi.URLParam(r, "name"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown service"})
			return
		}
		writeJSON(w, http.StatusOK, s)
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
