// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/middleware"
	"github.com/danielhkuo/spotifi/voting"
)

type ResultsHandler struct {
	engine *voting.Engine
	cfg    cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{engine: voting.NewEngine(db), cfg: cfg}
}

// Leaderboard handles GET /voting/leaderboard
// Returns the full catalog ranked by vote count descending.
func (h *ResultsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	board, err := h.engine.Leaderboard()
	if err != nil {
		slog.Error("failed to compute leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, board)
}

// Results handles GET /voting/results
// Returns the final selection: voted songs ranked by count, padded with
// random zero-vote songs up to 20 entries.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	selection, err := h.engine.FinalSelection(voting.SelectionSize)
	if err != nil {
		slog.Error("failed to compute final selection", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, selection)
}
