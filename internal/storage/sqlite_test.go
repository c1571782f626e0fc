package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRuns(t *testing.T, store *Store, runs ...Run) {
	t.Helper()
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}
}

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestOpenCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopening an existing database failed: %v", err)
	}
	again.Close()
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, expected string
	}{
		{"~/.flappyfish/scores.db", filepath.Join(home, ".flappyfish", "scores.db")},
		{"/tmp/x.db", "/tmp/x.db"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestRunOrdering(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store,
		Run{GameID: "flappy", Score: 100},
		Run{GameID: "flappy", Score: 50},
		Run{GameID: "fish", Score: 500},
		Run{GameID: "flappy", Score: 200},
		Run{GameID: "flappy", Score: 100, Level: 3},
	)

	tests := []struct {
		name     string
		fetch    func(string, int) ([]ScoreEntry, error)
		limit    int
		expected []int
	}{
		{"top", store.TopScores, 10, []int{200, 100, 100, 50}},
		{"top limited", store.TopScores, 2, []int{200, 100}},
		{"recent", store.RecentScores, 10, []int{100, 200, 50, 100}},
		{"recent limited", store.RecentScores, 1, []int{100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := tt.fetch("flappy", tt.limit)
			if err != nil {
				t.Fatalf("fetch failed: %v", err)
			}
			got := scoresOf(entries)
			if len(got) != len(tt.expected) {
				t.Fatalf("scores = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("scores = %v, expected %v", got, tt.expected)
				}
			}
		})
	}

	top, _ := store.TopScores("flappy", 10)
	if top[1].Level != 0 || top[2].Level != 3 {
		t.Errorf("tied runs should keep play order, levels %d then %d", top[1].Level, top[2].Level)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestHighScoreFromHistory(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("flappy"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty history = %d, %v", high, err)
	}
	saveRuns(t, store,
		Run{GameID: "flappy", Score: 100},
		Run{GameID: "flappy", Score: 300},
		Run{GameID: "fish", Score: 900},
	)
	if high, _ := store.HighScore("flappy"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	saveRuns(t, store,
		Run{GameID: "fish", Score: 3, Duration: 12.5},
		Run{GameID: "fish", Score: 9, Level: 2, Duration: 250},
		Run{GameID: "fish", Score: 0, Duration: 4},
	)

	stats, err := store.GetGameStats("fish")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.AvgScore != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalTime != 266.5 {
		t.Errorf("TotalTime = %f, expected 266.5", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestBestScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestScore("fish"); err != nil || best != 0 {
		t.Fatalf("BestScore() on empty db = %d, %v", best, err)
	}
	for _, score := range []int{12, 7} {
		if err := store.SetBestScore("fish", score); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", score, err)
		}
	}
	if best, _ := store.BestScore("fish"); best != 7 {
		t.Errorf("BestScore() = %d, expected the last saved 7", best)
	}

	saveRuns(t, store, Run{GameID: "fish", Score: 4}, Run{GameID: "flappy", Score: 8})
	if err := store.SetBestScore("flappy", 8); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	if err := store.ClearScores("fish"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if best, _ := store.BestScore("fish"); best != 0 {
		t.Errorf("BestScore() after clear = %d, expected 0", best)
	}
	if runs, _ := store.TopScores("fish", 10); len(runs) != 0 {
		t.Errorf("fish history after clear = %v", scoresOf(runs))
	}

	if best, _ := store.BestScore("flappy"); best != 8 {
		t.Errorf("clearing fish touched flappy best: %d", best)
	}
	if runs, _ := store.TopScores("flappy", 10); len(runs) != 1 {
		t.Errorf("clearing fish touched flappy history: %v", scoresOf(runs))
	}
}
