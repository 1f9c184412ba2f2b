// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
)

type seedFile struct {
	Songs []seedSong `json:"songs"`
}

type seedSong struct {
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Genre     string `json:"genre"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail"`
	Liked     bool   `json:"liked"`
}

// SeedSongs loads the song catalog from a JSON file of the form
// {"songs": [{"name": ..., "artist": ..., ...}]}. Songs that already
// exist (matched by name) are skipped, so seeding is idempotent.
// Returns the number of songs inserted.
func SeedSongs(db *sql.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	inserted := 0
	for _, s := range seed.Songs {
		var exists bool
		err := db.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM song WHERE name = $1)
		`, s.Name).Scan(&exists)
		if err != nil {
			return inserted, fmt.Errorf("failed to check existing song: %w", err)
		}
		if exists {
			continue
		}

		// Incremental ids, continuing from the highest assigned so far
		var nextID int
		err = db.QueryRow(`SELECT COALESCE(MAX(id), -1) + 1 FROM song`).Scan(&nextID)
		if err != nil {
			return inserted, fmt.Errorf("failed to allocate song id: %w", err)
		}

		_, err = db.Exec(`
			INSERT INTO song (id, name, artist, genre, src, thumbnail, liked)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, nextID, s.Name, s.Artist, s.Genre, s.Src, s.Thumbnail, s.Liked)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert song %q: %w", s.Name, err)
		}
		inserted++
	}

	return inserted, nil
}
