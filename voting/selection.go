// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/danielhkuo/spotifi/models"
)

// SelectionSize is the target length of the final selection list.
const SelectionSize = 20

// Engine derives aggregate views from the vote ledger: the leaderboard
// and the final padded selection.
type Engine struct {
	db *sql.DB

	// randIntN returns a uniform int in [0, n). Overridable in tests
	// for deterministic padding.
	randIntN func(n int) int
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db, randIntN: rand.Intn}
}

// Leaderboard returns the full catalog ranked by vote count descending.
// Songs without votes appear with voteCount 0; ties keep catalog (id)
// order.
func (e *Engine) Leaderboard() ([]models.RankedSong, error) {
	rows, err := e.db.Query(`
		SELECT s.id, s.name, s.artist, COUNT(v.user_id) AS vote_count
		FROM song s
		LEFT JOIN vote v ON v.song_id = s.id
		GROUP BY s.id, s.name, s.artist
		ORDER BY vote_count DESC, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	board := []models.RankedSong{}
	for rows.Next() {
		var entry models.RankedSong
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Artist, &entry.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		board = append(board, entry)
	}
	return board, rows.Err()
}

// FinalSelection returns up to targetSize songs: every song with at
// least one vote, ranked by vote count descending, padded with
// uniformly random zero-vote songs until targetSize is reached or the
// catalog is exhausted.
func (e *Engine) FinalSelection(targetSize int) ([]models.SelectedSong, error) {
	if targetSize < 0 {
		return nil, ErrInvalidArgument
	}

	rows, err := e.db.Query(`
		SELECT s.id, s.name, s.artist, s.genre, s.src, s.thumbnail, s.liked,
		       COUNT(v.user_id) AS vote_count
		FROM song s
		LEFT JOIN vote v ON v.song_id = s.id
		GROUP BY s.id, s.name, s.artist, s.genre, s.src, s.thumbnail, s.liked
		ORDER BY vote_count DESC, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query selection candidates: %w", err)
	}
	defer rows.Close()

	selected := []models.SelectedSong{}
	remaining := []models.SelectedSong{}
	for rows.Next() {
		var s models.SelectedSong
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.Src, &s.Thumbnail, &s.Liked, &s.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan selection row: %w", err)
		}
		if s.VoteCount > 0 {
			selected = append(selected, s)
		} else {
			remaining = append(remaining, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(selected) > targetSize {
		selected = selected[:targetSize]
	}

	// Pad with random zero-vote songs
	for len(selected) < targetSize && len(remaining) > 0 {
		i := e.randIntN(len(remaining))
		selected = append(selected, remaining[i])
		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return selected, nil
}
