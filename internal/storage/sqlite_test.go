package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	matches := []Match{
		{LeftScore: 11, RightScore: 4, Winner: "left", CPUSide: "left", Seed: 1, Duration: 95 * time.Second},
		{LeftScore: 2, RightScore: 11, Winner: "right", CPUSide: "left", Seed: 2, Duration: 120 * time.Second},
		{Player: "alice", LeftScore: 3, RightScore: 1, Winner: "none", CPUSide: "left", Seed: 3, Duration: 20 * time.Second},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	got, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(got))
	}

	// Newest first
	if got[0].Player != "alice" || got[0].Seed != 3 {
		t.Errorf("Expected alice's match first, got %+v", got[0])
	}
	if got[2].Player != "local" {
		t.Errorf("Expected empty player to be stored as local, got %q", got[2].Player)
	}
	if got[2].Duration != 95*time.Second || got[2].LeftScore != 11 || got[2].Winner != "left" {
		t.Errorf("First match did not round-trip: %+v", got[2])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	alice, err := store.RecentMatches("alice", 10)
	if err != nil {
		t.Fatalf("RecentMatches(alice) failed: %v", err)
	}
	if len(alice) != 1 {
		t.Errorf("Expected 1 match for alice, got %d", len(alice))
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.SaveMatch(Match{Winner: "left", CPUSide: "left", Seed: int64(i)}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.RecentMatches("", 5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 matches, got %d", len(got))
	}

	// Zero limit falls back to the default
	got, err = store.RecentMatches("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 20 {
		t.Errorf("Expected 20 matches, got %d", len(got))
	}
}

func TestStoreTally(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Tally("")
	if err != nil {
		t.Fatalf("Tally() on empty store failed: %v", err)
	}
	if empty != (Tally{}) {
		t.Errorf("Expected zero tally, got %+v", empty)
	}

	for _, w := range []string{"left", "left", "right", "none"} {
		if _, err := store.SaveMatch(Match{Winner: w, CPUSide: "left"}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveMatch(Match{Player: "bob", Winner: "right", CPUSide: "left"}); err != nil {
		t.Fatal(err)
	}

	all, err := store.Tally("")
	if err != nil {
		t.Fatal(err)
	}
	if all.Matches != 5 || all.LeftWins != 2 || all.RightWins != 2 || all.Abandoned != 1 {
		t.Errorf("Unexpected tally: %+v", all)
	}
	if all.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	bob, err := store.Tally("bob")
	if err != nil {
		t.Fatal(err)
	}
	if bob.Matches != 1 || bob.RightWins != 1 {
		t.Errorf("Unexpected tally for bob: %+v", bob)
	}
}

func TestStoreClearMatches(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"local", "bob", "bob"} {
		if _, err := store.SaveMatch(Match{Player: p, Winner: "left", CPUSide: "left"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearMatches("bob"); err != nil {
		t.Fatalf("ClearMatches(bob) failed: %v", err)
	}
	got, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Player != "local" {
		t.Errorf("Expected only the local match to remain, got %+v", got)
	}

	if err := store.ClearMatches(""); err != nil {
		t.Fatal(err)
	}
	got, err = store.RecentMatches("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no matches after clearing, got %d", len(got))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/subdir/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under home
	if _, err := os.Stat(filepath.Join(home, "subdir", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
