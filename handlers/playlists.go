// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/models"
)

// MaxPlaylistsPerUser caps how many playlists one user may own.
const MaxPlaylistsPerUser = 10

type PlaylistHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPlaylistHandler(db *sql.DB, cfg cliparse.Config) *PlaylistHandler {
	return &PlaylistHandler{db: db, cfg: cfg}
}

// List handles GET /playlists
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	playlists, err := queryPlaylists(h.db)
	if err != nil {
		slog.Error("failed to query playlists", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, playlists)
}

// Get handles GET /playlists/{id}
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Playlist ID required")
		return
	}

	playlist, err := h.queryPlaylist(id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Playlist not found")
		return
	}
	if err != nil {
		slog.Error("failed to query playlist", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, playlist)
}

// Create handles POST /playlists
// The caller becomes the owner; each user may own at most 10 playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.SavePlaylistRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var owned int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM playlist WHERE owner = $1
	`, identity.ID).Scan(&owned)
	if err != nil {
		slog.Error("failed to count playlists", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if owned >= MaxPlaylistsPerUser {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User cannot have more than 10 playlists")
		return
	}

	playlist := models.Playlist{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Owner:       identity.ID,
		SongIDs:     req.SongIDs,
		CreatedAt:   time.Now(),
	}
	if playlist.SongIDs == nil {
		playlist.SongIDs = []int{}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO playlist (id, name, description, thumbnail, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, playlist.ID, playlist.Name, playlist.Description, playlist.Thumbnail, playlist.Owner, playlist.CreatedAt)
	if err != nil {
		slog.Error("failed to insert playlist", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create playlist")
		return
	}

	if err := insertPlaylistSongs(tx, playlist.ID, playlist.SongIDs); err != nil {
		slog.Error("failed to insert playlist songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create playlist")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit playlist", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create playlist")
		return
	}

	slog.Info("playlist created", "playlist_id", playlist.ID, "owner", identity.ID)
	middleware.JSONResponse(w, http.StatusCreated, playlist)
}

// Update handles PUT /playlists/{id}
// Replaces the playlist's fields and song list.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Playlist ID required")
		return
	}

	var req models.SavePlaylistRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE playlist SET name = $1, description = $2, thumbnail = $3
		WHERE id = $4
	`, req.Name, req.Description, req.Thumbnail, id)
	if err != nil {
		slog.Error("failed to update playlist", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update playlist")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Playlist not found")
		return
	}

	if _, err := tx.Exec(`DELETE FROM playlist_song WHERE playlist_id = $1`, id); err != nil {
		slog.Error("failed to clear playlist songs", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update playlist")
		return
	}
	if err := insertPlaylistSongs(tx, id, req.SongIDs); err != nil {
		slog.Error("failed to insert playlist songs", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update playlist")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit playlist update", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update playlist")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"id": id})
}

// Delete handles DELETE /playlists/{id}
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Playlist ID required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM playlist_song WHERE playlist_id = $1`, id); err != nil {
		slog.Error("failed to delete playlist songs", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete playlist")
		return
	}

	res, err := tx.Exec(`DELETE FROM playlist WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete playlist", "error", err, "playlist_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete playlist")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Playlist not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit playlist delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete playlist")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Playlist deleted"})
}

func insertPlaylistSongs(tx *sql.Tx, playlistID string, songIDs []int) error {
	for i, songID := range songIDs {
		_, err := tx.Exec(`
			INSERT INTO playlist_song (playlist_id, song_id, position)
			VALUES ($1, $2, $3)
		`, playlistID, songID, i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *PlaylistHandler) queryPlaylist(id string) (models.Playlist, error) {
	var p models.Playlist
	err := h.db.QueryRow(`
		SELECT id, name, description, thumbnail, owner, created_at
		FROM playlist WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Thumbnail, &p.Owner, &p.CreatedAt)
	if err != nil {
		return models.Playlist{}, err
	}

	p.SongIDs = []int{}
	rows, err := h.db.Query(`
		SELECT song_id FROM playlist_song
		WHERE playlist_id = $1 ORDER BY position
	`, id)
	if err != nil {
		return models.Playlist{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var songID int
		if err := rows.Scan(&songID); err != nil {
			return models.Playlist{}, err
		}
		p.SongIDs = append(p.SongIDs, songID)
	}
	return p, rows.Err()
}

// queryPlaylists returns every playlist with its ordered song ids.
// Shared with the search handler.
func queryPlaylists(db *sql.DB) ([]models.Playlist, error) {
	rows, err := db.Query(`
		SELECT id, name, description, thumbnail, owner, created_at
		FROM playlist ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []models.Playlist{}
	index := map[string]int{}
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Thumbnail, &p.Owner, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.SongIDs = []int{}
		index[p.ID] = len(playlists)
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	songRows, err := db.Query(`
		SELECT playlist_id, song_id FROM playlist_song ORDER BY playlist_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer songRows.Close()

	for songRows.Next() {
		var playlistID string
		var songID int
		if err := songRows.Scan(&playlistID, &songID); err != nil {
			return nil, err
		}
		if i, ok := index[playlistID]; ok {
			playlists[i].SongIDs = append(playlists[i].SongIDs, songID)
		}
	}
	return playlists, songRows.Err()
}
