package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.RecordScore("icy", score, 10); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}
	if _, err := store.RecordScore("other", 500, 10); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := store.TopScores("icy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	got := scoresOf(scores)
	want := []int{200, 100, 50}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	for _, e := range scores {
		if e.GameID != "icy" {
			t.Errorf("entry from %q leaked into icy", e.GameID)
		}
	}
}

func TestStoreLeaderboardCapped(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.RecordScore("icy", i*10, 10); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, _ := store.TopScores("icy", 100)
	if len(scores) != 10 {
		t.Fatalf("leaderboard has %d entries, want 10", len(scores))
	}
	if scores[0].Score != 150 || scores[9].Score != 60 {
		t.Errorf("board = %v, want 150..60", scoresOf(scores))
	}
}

func TestStoreRecordRank(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score int
		want  int
	}{
		{100, 1},
		{50, 2},
		{200, 1},
		{100, 3}, // equal scores keep arrival order
		{10, 0},  // board of 4 is full and 10 is the lowest
		{75, 4},
	}

	for _, tt := range tests {
		rank, err := store.RecordScore("icy", tt.score, 4)
		if err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", tt.score, err)
		}
		if rank != tt.want {
			t.Errorf("RecordScore(%d) rank = %d, want %d", tt.score, rank, tt.want)
		}
	}

	scores, _ := store.TopScores("icy", 10)
	got := scoresOf(scores)
	want := []int{200, 100, 100, 75}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("board = %v, want %v", got, want)
		}
	}
}

func TestStoreDuplicatesKept(t *testing.T) {
	store := openTestStore(t)

	for range 3 {
		store.RecordScore("icy", 70, 10)
	}

	scores, _ := store.TopScores("icy", 10)
	if len(scores) != 3 {
		t.Errorf("got %d entries, want 3 duplicates", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("icy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty HighScore = %d, want 0", high)
	}

	store.RecordScore("icy", 100, 10)
	store.RecordScore("icy", 300, 10)
	store.RecordScore("icy", 200, 10)

	high, _ = store.HighScore("icy")
	if high != 300 {
		t.Errorf("HighScore = %d, want 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("icy", 100, 10)
	store.RecordScore("icy", 200, 10)
	store.RecordScore("other", 300, 10)

	if err := store.ClearScores("icy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("icy", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	stats, _ := store.GetGameStats("icy")
	if stats.GamesCount != 0 {
		t.Errorf("run history not cleared: %d runs", stats.GamesCount)
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("other games should not be affected by clearing icy")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	// Runs that fall off the board still count
	for i := 1; i <= 5; i++ {
		store.RecordScore("icy", i*10, 2)
	}

	stats, err := store.GetGameStats("icy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 5 {
		t.Errorf("GamesCount = %d, want 5", stats.GamesCount)
	}
	if stats.HighScore != 50 || stats.TotalScore != 150 || stats.AvgScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
