// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/spotifi/models"
)

// MaxVotesPerUser is the cap on simultaneous active votes per user.
const MaxVotesPerUser = 20

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrVoteLimitExceeded = fmt.Errorf("maximum votes (%d) reached", MaxVotesPerUser)
)

// Action is the outcome of a vote toggle.
type Action string

const (
	ActionAdded   Action = "added"
	ActionRemoved Action = "removed"
)

// Ledger is the durable record of user→song endorsements. It enforces
// toggle semantics and the per-user vote cap.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// CastOrRetract toggles the vote for (userID, songID). A vote that
// exists is deleted; otherwise one is inserted, unless the user already
// holds MaxVotesPerUser votes. The cap check and the insert run as a
// single guarded statement inside one transaction, so concurrent casts
// cannot push a user past the cap.
func (l *Ledger) CastOrRetract(userID string, songID int) (Action, error) {
	if userID == "" || songID < 0 {
		return "", ErrInvalidArgument
	}

	tx, err := l.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		DELETE FROM vote WHERE user_id = $1 AND song_id = $2
	`, userID, songID)
	if err != nil {
		return "", fmt.Errorf("failed to delete vote: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read rows affected: %w", err)
	}

	if deleted > 0 {
		if err := tx.Commit(); err != nil {
			return "", fmt.Errorf("failed to commit vote removal: %w", err)
		}
		return ActionRemoved, nil
	}

	// Guarded insert: the row only materializes while the user is
	// under the cap, and the (user_id, song_id) primary key rejects
	// duplicates.
	res, err = tx.Exec(`
		INSERT INTO vote (user_id, song_id, created_at)
		SELECT $1, $2, $3
		WHERE (SELECT COUNT(*) FROM vote WHERE user_id = $1) < $4
	`, userID, songID, time.Now(), MaxVotesPerUser)
	if err != nil {
		return "", fmt.Errorf("failed to insert vote: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read rows affected: %w", err)
	}
	if inserted == 0 {
		return "", ErrVoteLimitExceeded
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit vote: %w", err)
	}
	return ActionAdded, nil
}

// VotedSongIDs returns the set of song ids the user has active votes for.
func (l *Ledger) VotedSongIDs(userID string) (map[int]bool, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}

	rows, err := l.db.Query(`
		SELECT song_id FROM vote WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	voted := make(map[int]bool)
	for rows.Next() {
		var songID int
		if err := rows.Scan(&songID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		voted[songID] = true
	}
	return voted, rows.Err()
}

// VotedSongs returns the catalog songs the user has active votes for,
// in catalog order.
func (l *Ledger) VotedSongs(userID string) ([]models.Song, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}

	rows, err := l.db.Query(`
		SELECT s.id, s.name, s.artist, s.genre, s.src, s.thumbnail, s.liked
		FROM song s
		JOIN vote v ON v.song_id = s.id AND v.user_id = $1
		ORDER BY s.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voted songs: %w", err)
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		var s models.Song
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.Src, &s.Thumbnail, &s.Liked); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// AvailableSongs returns the full catalog, each song annotated with
// whether the user currently has a vote for it. Voted songs stay in the
// list so the user can retract them.
func (l *Ledger) AvailableSongs(userID string) ([]models.VotableSong, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}

	rows, err := l.db.Query(`
		SELECT s.id, s.name, s.artist, s.genre, s.src, s.thumbnail, s.liked,
		       v.user_id IS NOT NULL
		FROM song s
		LEFT JOIN vote v ON v.song_id = s.id AND v.user_id = $1
		ORDER BY s.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query available songs: %w", err)
	}
	defer rows.Close()

	songs := []models.VotableSong{}
	for rows.Next() {
		var s models.VotableSong
		if err := rows.Scan(&s.ID, &s.Name, &s.Artist, &s.Genre, &s.Src, &s.Thumbnail, &s.Liked, &s.Voted); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

// ResetAll deletes every vote. Idempotent.
func (l *Ledger) ResetAll() error {
	if _, err := l.db.Exec(`DELETE FROM vote`); err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}
	return nil
}
