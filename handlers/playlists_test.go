// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/spotifi/models"
	"github.com/danielhkuo/spotifi/testutil"
)

func createPlaylist(t *testing.T, handler *PlaylistHandler, userID, name string, songIDs []int) (models.Playlist, int) {
	t.Helper()

	body := models.SavePlaylistRequest{Name: name, SongIDs: songIDs}
	req := testutil.MakeRequest("POST", "/playlists", body, nil)
	w := httptest.NewRecorder()
	handler.Create(w, authed(req, userID, "alice"))

	var playlist models.Playlist
	if w.Code == http.StatusCreated {
		testutil.AssertJSON(t, w, &playlist)
	}
	return playlist, w.Code
}

func TestCreatePlaylist(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")
	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")

	playlist, code := createPlaylist(t, handler, userID, "Road Trip", []int{1, 0})
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", code, http.StatusCreated)
	}
	if playlist.ID == "" {
		t.Error("expected a generated playlist id")
	}
	if playlist.Owner != userID {
		t.Errorf("owner = %q, want %q", playlist.Owner, userID)
	}
	if len(playlist.SongIDs) != 2 || playlist.SongIDs[0] != 1 || playlist.SongIDs[1] != 0 {
		t.Errorf("song ids = %v, want [1 0] in insertion order", playlist.SongIDs)
	}
}

func TestCreatePlaylist_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")

	// Missing name
	req := testutil.MakeRequest("POST", "/playlists", models.SavePlaylistRequest{}, nil)
	w := httptest.NewRecorder()
	handler.Create(w, authed(req, userID, "alice"))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// No identity
	req = testutil.MakeRequest("POST", "/playlists", models.SavePlaylistRequest{Name: "X"}, nil)
	w = httptest.NewRecorder()
	handler.Create(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCreatePlaylist_OwnerCap(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")
	otherID, _ := testutil.CreateTestUser(t, conn, cfg, "bob")

	for i := 0; i < MaxPlaylistsPerUser; i++ {
		_, code := createPlaylist(t, handler, userID, fmt.Sprintf("Playlist %d", i), nil)
		if code != http.StatusCreated {
			t.Fatalf("playlist %d: status = %d", i, code)
		}
	}

	_, code := createPlaylist(t, handler, userID, "One Too Many", nil)
	if code != http.StatusBadRequest {
		t.Errorf("11th playlist status = %d, want %d", code, http.StatusBadRequest)
	}

	// The cap is per owner
	_, code = createPlaylist(t, handler, otherID, "Bob's First", nil)
	if code != http.StatusCreated {
		t.Errorf("other user's playlist status = %d, want %d", code, http.StatusCreated)
	}
}

func TestListAndGetPlaylists(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")
	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")

	created, _ := createPlaylist(t, handler, userID, "Favorites", []int{0})

	req := testutil.MakeRequest("GET", "/playlists", nil, nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var playlists []models.Playlist
	testutil.AssertJSON(t, w, &playlists)
	if len(playlists) != 1 || playlists[0].Name != "Favorites" {
		t.Fatalf("playlists = %v, want just Favorites", playlists)
	}

	req = testutil.MakeRequest("GET", "/playlists/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var playlist models.Playlist
	testutil.AssertJSON(t, w, &playlist)
	if playlist.ID != created.ID || len(playlist.SongIDs) != 1 {
		t.Errorf("playlist = %+v, want the created one with its song", playlist)
	}

	req = testutil.MakeRequest("GET", "/playlists/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	handler.Get(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdatePlaylist(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")
	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")

	created, _ := createPlaylist(t, handler, userID, "Favorites", []int{0})

	body := models.SavePlaylistRequest{Name: "Renamed", SongIDs: []int{1}}
	req := testutil.MakeRequest("PUT", "/playlists/"+created.ID, body, nil)
	req.SetPathValue("id", created.ID)
	w := httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Read it back
	req = testutil.MakeRequest("GET", "/playlists/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Get(w, req)
	var playlist models.Playlist
	testutil.AssertJSON(t, w, &playlist)
	if playlist.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", playlist.Name)
	}
	if len(playlist.SongIDs) != 1 || playlist.SongIDs[0] != 1 {
		t.Errorf("song ids = %v, want [1]", playlist.SongIDs)
	}

	// Unknown playlist
	req = testutil.MakeRequest("PUT", "/playlists/missing", body, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	handler.Update(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeletePlaylist(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlaylistHandler(conn, cfg)

	userID, _ := testutil.CreateTestUser(t, conn, cfg, "alice")
	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")

	created, _ := createPlaylist(t, handler, userID, "Favorites", []int{0})

	req := testutil.MakeRequest("DELETE", "/playlists/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w := httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM playlist_song WHERE playlist_id = $1`, created.ID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Error("playlist songs still present after delete")
	}

	// Deleting again is a 404
	req = testutil.MakeRequest("DELETE", "/playlists/"+created.ID, nil, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.Delete(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
