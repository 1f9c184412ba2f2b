// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/models"
)

type SearchHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSearchHandler(db *sql.DB, cfg cliparse.Config) *SearchHandler {
	return &SearchHandler{db: db, cfg: cfg}
}

// Search handles GET /search?search_query=q&exact=bool
// Matches songs on name/artist/genre and playlists on name/description.
// exact=true is case-sensitive, otherwise matching ignores case.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search_query")
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "search_query is required")
		return
	}
	exact := r.URL.Query().Get("exact") == "true"

	songs, err := querySongs(h.db)
	if err != nil {
		slog.Error("failed to query songs for search", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	playlists, err := queryPlaylists(h.db)
	if err != nil {
		slog.Error("failed to query playlists for search", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result := models.SearchResponse{
		Songs:     []models.Song{},
		Playlists: []models.Playlist{},
	}
	for _, s := range songs {
		if matches(query, exact, s.Name, s.Artist, s.Genre) {
			result.Songs = append(result.Songs, s)
		}
	}
	for _, p := range playlists {
		if matches(query, exact, p.Name, p.Description) {
			result.Playlists = append(result.Playlists, p)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

func matches(query string, exact bool, fields ...string) bool {
	if !exact {
		query = strings.ToLower(query)
	}
	for _, f := range fields {
		if !exact {
			f = strings.ToLower(f)
		}
		if strings.Contains(f, query) {
			return true
		}
	}
	return false
}
