// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/spotifi/auth"
	"github.com/danielhkuo/spotifi/cliparse"
	"github.com/danielhkuo/spotifi/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; no external services needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory db
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5020,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		TokenSecret:  "test-token-secret",
	}
}

// CreateTestUser inserts a user and returns its ID and a valid session token
func CreateTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, username string) (userID, token string) {
	t.Helper()

	userID, _ = auth.GenerateID(16)
	hash, err := auth.HashPassword("password-" + username)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO app_user (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, username, hash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.GenerateSessionToken(userID, username, cfg.TokenSecret)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}

	return userID, token
}

// InsertTestSong inserts a catalog song with the given id
func InsertTestSong(t *testing.T, conn *sql.DB, id int, name, artist, genre string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO song (id, name, artist, genre, src, thumbnail, liked)
		VALUES ($1, $2, $3, $4, '', '', FALSE)
	`, id, name, artist, genre)
	if err != nil {
		t.Fatalf("Failed to create test song: %v", err)
	}
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, conn *sql.DB, userID string, songID int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (user_id, song_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, songID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountVotes returns the number of vote rows for a user
func CountVotes(t *testing.T, conn *sql.DB, userID string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE user_id = $1`, userID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
