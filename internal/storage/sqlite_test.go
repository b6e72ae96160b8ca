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

func mustSave(t *testing.T, store *Store, r Run) {
	t.Helper()
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "chicken", Score: 10, Cause: "drowned", Ticks: 400})
	mustSave(t, store, Run{GameID: "chicken", Score: 5, Cause: "hit by vehicle", Ticks: 200})
	mustSave(t, store, Run{GameID: "chicken", Score: 20, Cause: "hit by train", Ticks: 900})
	mustSave(t, store, Run{GameID: "snowman", Score: 50, Cause: "drowned", Ticks: 1500})

	runs, err := store.TopScores("chicken", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	want := []int{20, 10, 5}
	for i, w := range want {
		if runs[i].Score != w {
			t.Errorf("runs[%d].Score = %d, want %d", i, runs[i].Score, w)
		}
	}

	if runs[0].Cause != "hit by train" || runs[0].Ticks != 900 {
		t.Errorf("Best run = %+v, want cause %q and 900 ticks", runs[0], "hit by train")
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	snow, err := store.TopScores("snowman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(snow) != 1 {
		t.Errorf("Expected 1 snowman run, got %d", len(snow))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Run{GameID: "test", Score: (i + 1) * 10})
	}

	runs, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTopScoresTiesKeepOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "guard", Score: 7, Cause: "first"})
	mustSave(t, store, Run{GameID: "guard", Score: 7, Cause: "second"})

	runs, err := store.TopScores("guard", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Cause != "first" {
		t.Errorf("Expected earlier run first on ties, got %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("android")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, Run{GameID: "android", Score: 10})
	mustSave(t, store, Run{GameID: "android", Score: 30})
	mustSave(t, store, Run{GameID: "android", Score: 20})

	high, err = store.HighScore("android")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("chicken")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for empty game, got %+v", empty)
	}

	mustSave(t, store, Run{GameID: "chicken", Score: 4})
	mustSave(t, store, Run{GameID: "chicken", Score: 8})
	mustSave(t, store, Run{GameID: "guard", Score: 100})

	stats, err := store.Stats("chicken")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, want 2", stats.Runs)
	}
	if stats.Best != 8 {
		t.Errorf("Best = %d, want 8", stats.Best)
	}
	if stats.Average != 6 {
		t.Errorf("Average = %v, want 6", stats.Average)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreStatsCauses(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "snowman", Score: 1, Cause: "drowned"})
	mustSave(t, store, Run{GameID: "snowman", Score: 2, Cause: "hit by vehicle"})
	mustSave(t, store, Run{GameID: "snowman", Score: 3, Cause: "drowned"})
	mustSave(t, store, Run{GameID: "snowman", Score: 4, Cause: "caught by hazard"})
	mustSave(t, store, Run{GameID: "snowman", Score: 5})
	mustSave(t, store, Run{GameID: "android", Score: 9, Cause: "hit by train"})

	stats, err := store.Stats("snowman")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	want := []CauseCount{
		{Cause: "drowned", Runs: 2},
		{Cause: "caught by hazard", Runs: 1},
		{Cause: "hit by vehicle", Runs: 1},
	}
	if len(stats.Causes) != len(want) {
		t.Fatalf("Causes = %+v, want %+v", stats.Causes, want)
	}
	for i := range want {
		if stats.Causes[i] != want[i] {
			t.Errorf("Causes[%d] = %+v, want %+v", i, stats.Causes[i], want[i])
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "chicken", Score: 1})
	mustSave(t, store, Run{GameID: "chicken", Score: 2})
	mustSave(t, store, Run{GameID: "snowman", Score: 3})

	if err := store.ClearRuns("chicken"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	chicken, _ := store.TopScores("chicken", 10)
	if len(chicken) != 0 {
		t.Errorf("Expected 0 chicken runs after clear, got %d", len(chicken))
	}

	snow, _ := store.TopScores("snowman", 10)
	if len(snow) != 1 {
		t.Errorf("Snowman runs should not be affected by clearing chicken")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
