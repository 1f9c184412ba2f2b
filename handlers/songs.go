// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/models"
)

type SongHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSongHandler(db *sql.DB, cfg cliparse.Config) *SongHandler {
	return &SongHandler{db: db, cfg: cfg}
}

// List handles GET /songs
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, err := querySongs(h.db)
	if err != nil {
		slog.Error("failed to query songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, songs)
}

// Get handles GET /songs/{id}
func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	var song models.Song
	err = h.db.QueryRow(`
		SELECT id, name, artist, genre, src, thumbnail, liked
		FROM song WHERE id = $1
	`, id).Scan(&song.ID, &song.Name, &song.Artist, &song.Genre, &song.Src, &song.Thumbnail, &song.Liked)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Song not found")
		return
	}
	if err != nil {
		slog.Error("failed to query song", "error", err, "song_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, song)
}

// Add handles POST /songs
// Assigns the next incremental id. Duplicate names are rejected.
func (h *SongHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Src == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid song data")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM song WHERE name = $1)
	`, req.Name).Scan(&exists)
	if err != nil {
		slog.Error("failed to check existing song", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "Song already exists")
		return
	}

	var nextID int
	err = h.db.QueryRow(`SELECT COALESCE(MAX(id), -1) + 1 FROM song`).Scan(&nextID)
	if err != nil {
		slog.Error("failed to allocate song id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	song := models.Song{
		ID:        nextID,
		Name:      req.Name,
		Artist:    req.Artist,
		Genre:     req.Genre,
		Src:       req.Src,
		Thumbnail: req.Thumbnail,
	}

	_, err = h.db.Exec(`
		INSERT INTO song (id, name, artist, genre, src, thumbnail, liked)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
	`, song.ID, song.Name, song.Artist, song.Genre, song.Src, song.Thumbnail)
	if err != nil {
		slog.Error("failed to insert song", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add song")
		return
	}

	slog.Info("song added", "song_id", song.ID, "name", song.Name)
	middleware.JSONResponse(w, http.StatusCreated, song)
}

// ToggleLike handles PATCH /songs/{id}/like
// Flips the song's liked flag and returns the new state.
func (h *SongHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	res, err := h.db.Exec(`UPDATE song SET liked = NOT liked WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to toggle like", "error", err, "song_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Song not found")
		return
	}

	var liked bool
	if err := h.db.QueryRow(`SELECT liked FROM song WHERE id = $1`, id).Scan(&liked); err != nil {
		slog.Error("failed to read like state", "error", err, "song_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LikeResponse{Liked: liked})
}

// querySongs returns the whole catalog in id order.
// Shared with the search handler.
func querySongs(db *sql.DB) ([]models.Song, error) {
	rows, err := db.Query(`
		SELECT id, name, artist, genre, src, thumbnail, liked
		FROM song ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		var s models.Song
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.Src, &s.Thumbnail, &s.Liked); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}
