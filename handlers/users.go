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

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM app_user WHERE username = $1)
	`, req.Username).Scan(&exists)
	if err != nil {
		slog.Error("failed to check existing user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "User already exists.")
		return
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Username, hash, time.Now())
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	slog.Info("user registered", "user_id", userID, "username", req.Username)
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "User registered successfully."})
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	var userID, hash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM app_user WHERE username = $1
	`, req.Username).Scan(&userID, &hash)

	if err == sql.ErrNoRows || (err == nil && !auth.CheckPassword(req.Password, hash)) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := auth.GenerateSessionToken(userID, req.Username, h.cfg.TokenSecret)
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID)
	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, username, created_at FROM app_user ORDER BY created_at, id
	`)
	if err != nil {
		slog.Error("failed to query users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			slog.Error("failed to scan user", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		users = append(users, u)
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID required")
		return
	}

	var u models.User
	err := h.db.QueryRow(`
		SELECT id, username, created_at FROM app_user WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}

// Delete handles DELETE /users/{id}
// Removes the account and its votes.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "User ID required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vote WHERE user_id = $1`, id); err != nil {
		slog.Error("failed to delete user votes", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	res, err := tx.Exec(`DELETE FROM app_user WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit user delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	slog.Info("user deleted", "user_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "User deleted"})
}
