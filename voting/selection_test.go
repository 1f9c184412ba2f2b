// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"testing"

	"github.com/danielhkuo/spotifi/testutil"
)

func TestLeaderboard_NoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")
	testutil.InsertTestSong(t, conn, 2, "Song C", "Artist C", "jazz")

	ranked, err := engine.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("Leaderboard() length = %d, want 3", len(ranked))
	}
	for i, r := range ranked {
		if r.VoteCount != 0 {
			t.Errorf("entry %d vote count = %d, want 0", i, r.VoteCount)
		}
		if r.ID != i {
			t.Errorf("entry %d id = %d, want catalog order", i, r.ID)
		}
	}
}

func TestLeaderboard_CountsAndOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")
	testutil.InsertTestSong(t, conn, 2, "Song C", "Artist C", "jazz")

	testutil.CastTestVote(t, conn, "u1", 1)
	testutil.CastTestVote(t, conn, "u2", 1)
	testutil.CastTestVote(t, conn, "u1", 2)

	ranked, err := engine.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("Leaderboard() length = %d, want full catalog", len(ranked))
	}

	want := []struct {
		id    int
		count int
	}{
		{1, 2},
		{2, 1},
		{0, 0},
	}
	for i, w := range want {
		if ranked[i].ID != w.id || ranked[i].VoteCount != w.count {
			t.Errorf("entry %d = (id %d, count %d), want (id %d, count %d)",
				i, ranked[i].ID, ranked[i].VoteCount, w.id, w.count)
		}
	}
}

func TestLeaderboard_TiesKeepCatalogOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")
	testutil.CastTestVote(t, conn, "u1", 0)
	testutil.CastTestVote(t, conn, "u1", 1)

	ranked, err := engine.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if ranked[0].ID != 0 || ranked[1].ID != 1 {
		t.Errorf("tied entries out of catalog order: %d, %d", ranked[0].ID, ranked[1].ID)
	}
}

func TestLeaderboard_AfterReset(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ledger := NewLedger(conn)

	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.CastTestVote(t, conn, "u1", 0)
	testutil.CastTestVote(t, conn, "u2", 0)

	ranked, err := engine.Leaderboard()
	if err != nil {
		t.Fatal(err)
	}
	if ranked[0].VoteCount != 2 {
		t.Fatalf("vote count = %d, want 2", ranked[0].VoteCount)
	}

	if err := ledger.ResetAll(); err != nil {
		t.Fatal(err)
	}
	ranked, err = engine.Leaderboard()
	if err != nil {
		t.Fatal(err)
	}
	if ranked[0].VoteCount != 0 {
		t.Errorf("vote count after reset = %d, want 0", ranked[0].VoteCount)
	}
}

func TestFinalSelection_SmallCatalog(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	testutil.InsertTestSong(t, conn, 0, "Song A", "Artist A", "rock")
	testutil.InsertTestSong(t, conn, 1, "Song B", "Artist B", "pop")
	testutil.InsertTestSong(t, conn, 2, "Song C", "Artist C", "jazz")

	selected, err := engine.FinalSelection(SelectionSize)
	if err != nil {
		t.Fatalf("FinalSelection() error = %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("selection length = %d, want 3 (whole catalog)", len(selected))
	}
	for _, s := range selected {
		if s.VoteCount != 0 {
			t.Errorf("song %d vote count = %d, want 0", s.ID, s.VoteCount)
		}
	}
}

func TestFinalSelection_VotedFirstThenPadding(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	const catalog = 25
	for i := 0; i < catalog; i++ {
		testutil.InsertTestSong(t, conn, i, fmt.Sprintf("Song %d", i), "Artist", "rock")
	}

	// Song 5 gets 3 votes, song 10 gets 2, song 15 gets 1
	for _, u := range []string{"u1", "u2", "u3"} {
		testutil.CastTestVote(t, conn, u, 5)
	}
	for _, u := range []string{"u1", "u2"} {
		testutil.CastTestVote(t, conn, u, 10)
	}
	testutil.CastTestVote(t, conn, "u1", 15)

	selected, err := engine.FinalSelection(SelectionSize)
	if err != nil {
		t.Fatalf("FinalSelection() error = %v", err)
	}
	if len(selected) != SelectionSize {
		t.Fatalf("selection length = %d, want %d", len(selected), SelectionSize)
	}

	// Voted songs lead, ordered by vote count
	wantHead := []struct {
		id    int
		count int
	}{
		{5, 3},
		{10, 2},
		{15, 1},
	}
	for i, w := range wantHead {
		if selected[i].ID != w.id || selected[i].VoteCount != w.count {
			t.Errorf("entry %d = (id %d, count %d), want (id %d, count %d)",
				i, selected[i].ID, selected[i].VoteCount, w.id, w.count)
		}
	}

	// Padding is zero-count and distinct
	seen := make(map[int]bool)
	for _, s := range selected {
		if seen[s.ID] {
			t.Errorf("song %d selected twice", s.ID)
		}
		seen[s.ID] = true
	}
	for _, s := range selected[3:] {
		if s.VoteCount != 0 {
			t.Errorf("padding song %d has vote count %d, want 0", s.ID, s.VoteCount)
		}
	}
}

func TestFinalSelection_TruncatesToTarget(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	for i := 0; i < 5; i++ {
		testutil.InsertTestSong(t, conn, i, fmt.Sprintf("Song %d", i), "Artist", "rock")
		testutil.CastTestVote(t, conn, "u1", i)
	}
	testutil.CastTestVote(t, conn, "u2", 3)

	selected, err := engine.FinalSelection(3)
	if err != nil {
		t.Fatalf("FinalSelection() error = %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("selection length = %d, want 3", len(selected))
	}
	if selected[0].ID != 3 || selected[0].VoteCount != 2 {
		t.Errorf("top entry = (id %d, count %d), want (id 3, count 2)",
			selected[0].ID, selected[0].VoteCount)
	}
}

func TestFinalSelection_DeterministicPadding(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	// Always pick the first remaining candidate
	engine.randIntN = func(n int) int { return 0 }

	const catalog = 30
	for i := 0; i < catalog; i++ {
		testutil.InsertTestSong(t, conn, i, fmt.Sprintf("Song %d", i), "Artist", "rock")
	}
	testutil.CastTestVote(t, conn, "u1", 7)

	selected, err := engine.FinalSelection(SelectionSize)
	if err != nil {
		t.Fatalf("FinalSelection() error = %v", err)
	}
	if len(selected) != SelectionSize {
		t.Fatalf("selection length = %d, want %d", len(selected), SelectionSize)
	}
	if selected[0].ID != 7 {
		t.Errorf("first entry = %d, want the voted song 7", selected[0].ID)
	}

	// Re-running with the same stub yields the same selection
	again, err := engine.FinalSelection(SelectionSize)
	if err != nil {
		t.Fatal(err)
	}
	for i := range selected {
		if selected[i].ID != again[i].ID {
			t.Errorf("entry %d differs between runs: %d vs %d", i, selected[i].ID, again[i].ID)
		}
	}
}
