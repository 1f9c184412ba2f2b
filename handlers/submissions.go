// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/spotifi/auth"
	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/models"
)

type SubmissionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSubmissionHandler(db *sql.DB, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{db: db, cfg: cfg}
}

// Create handles POST /submissions
// New submissions start unapproved, pending moderation.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.CreateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate submission ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	submission := models.Submission{
		ID:        id,
		Name:      req.Name,
		Artist:    req.Artist,
		Genre:     req.Genre,
		Link:      req.Link,
		Approved:  false,
		CreatedAt: time.Now(),
	}

	_, err = h.db.Exec(`
		INSERT INTO submission (id, name, artist, genre, link, approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, submission.ID, submission.Name, submission.Artist, submission.Genre,
		submission.Link, submission.Approved, submission.CreatedAt)
	if err != nil {
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create submission")
		return
	}

	slog.Info("submission created", "submission_id", submission.ID, "name", submission.Name)
	middleware.JSONResponse(w, http.StatusCreated, submission)
}

// List handles GET /submissions
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, name, artist, genre, link, approved, created_at
		FROM submission ORDER BY created_at, id
	`)
	if err != nil {
		slog.Error("failed to query submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.Link, &s.Approved, &s.CreatedAt); err != nil {
			slog.Error("failed to scan submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		submissions = append(submissions, s)
	}

	middleware.JSONResponse(w, http.StatusOK, submissions)
}

// UpdateStatus handles PATCH /submissions/{id}/status
// Approves or rejects a submission.
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Submission ID required")
		return
	}

	var req models.UpdateSubmissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Approved == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "approved is required")
		return
	}

	res, err := h.db.Exec(`
		UPDATE submission SET approved = $1 WHERE id = $2
	`, *req.Approved, id)
	if err != nil {
		slog.Error("failed to update submission", "error", err, "submission_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update submission")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Submission not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Submission updated"})
}
