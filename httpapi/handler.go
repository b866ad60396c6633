// Package httpapi exposes school search and lookup as a JSON HTTP API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/directory"
)

// Engine is the query surface the API serves. *schoolfinder.Finder and
// *search.Searcher both satisfy it.
type Engine interface {
	Search(ctx context.Context, query, state string, opts *core.SearchOptions) []core.SchoolRecord
	GetByID(ctx context.Context, id string) (*core.SchoolRecord, error)
}

// Handler serves the school endpoints.
type Handler struct {
	engine Engine
	logger *slog.Logger
}

func NewHandler(engine Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: engine, logger: logger}
}

// RegisterHTTP mounts the endpoints on r.
func (h *Handler) RegisterHTTP(r chi.Router) {
	r.Get("/api/v1/schools/search", h.handleSearch)
	r.Get("/api/v1/schools/{id}", h.handleGet)
}

// handleSearch runs a ranked search.
// GET /api/v1/schools/search?q=&state=&max=&fuzzy=&geo=
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	opts := core.DefaultSearchOptions()

	if v := params.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "max must be a non-negative integer")
			return
		}
		opts.MaxResults = n
	}
	if v := params.Get("fuzzy"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "fuzzy must be a boolean")
			return
		}
		opts.EnableFuzzySearch = b
	}
	if v := params.Get("geo"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "geo must be a boolean")
			return
		}
		opts.EnableGeographicSearch = b
	}

	results := h.engine.Search(r.Context(), params.Get("q"), strings.TrimSpace(params.Get("state")), opts)
	if results == nil {
		results = []core.SchoolRecord{}
	}
	writeJSON(w, http.StatusOK, results)
}

// handleGet looks up one school by directory id.
// GET /api/v1/schools/{id}
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.engine.GetByID(r.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Warn("school lookup failed", "id", id, "err", err)
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func statusFor(err error) int {
	if errors.Is(err, core.ErrEmptySchoolID) {
		return http.StatusBadRequest
	}
	var derr *directory.DirectoryError
	if errors.As(err, &derr) && derr.NotFound() {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
