// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/spotifi/models"
	"github.com/danielhkuo/spotifi/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "spotifi API v1" {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/voting/songs"},
		{"GET", "/voting/votedSongs"},
		{"POST", "/voting/vote"},
		{"POST", "/voting/reset"},
		{"GET", "/voting/leaderboard"},
		{"GET", "/voting/results"},
		{"GET", "/users"},
		{"POST", "/submissions"},
		{"GET", "/submissions"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 without token, got %d", w.Code)
			}
		})
	}
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/voting/songs", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 with invalid token, got %d", w.Code)
	}
}

func TestRoutedVotingFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	_, token := testutil.CreateTestUser(t, db, cfg, "alice")
	testutil.InsertTestSong(t, db, 0, "Song A", "Artist A", "rock")

	songID := 0
	req := testutil.MakeRequest("POST", "/voting/vote",
		models.VoteRequest{SongID: &songID},
		map[string]string{"Authorization": "Bearer " + token})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/voting/votedSongs", nil,
		map[string]string{"Authorization": "Bearer " + token})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var songs []models.Song
	testutil.AssertJSON(t, w, &songs)
	if len(songs) != 1 || songs[0].ID != 0 {
		t.Errorf("voted songs = %v, want just song 0", songs)
	}
}

func TestUnknownMethodNotRouted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// /health only accepts GET
	req := httptest.NewRequest("DELETE", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}
