package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Re-opening runs the migration again.
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	again.Close()
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Rooms: 1, Deaths: 4, Rotations: 10, Duration: 90 * time.Second},
		{Rooms: 3, Deaths: 2, Rotations: 7, Duration: 75 * time.Second, Completed: true},
		{Rooms: 2, Deaths: 0, Rotations: 3, Duration: 1500 * time.Millisecond},
	}
	for i, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun(%d) failed: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("SaveRun(%d) returned id %d", i, id)
		}
	}

	got, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentRuns(2) returned %d runs", len(got))
	}
	if got[0].Rooms != 2 || got[0].Duration != 1500*time.Millisecond {
		t.Errorf("newest run = %+v, want rooms 2 and 1.5s", got[0])
	}
	if got[1].Rooms != 3 || !got[1].Completed {
		t.Errorf("second run = %+v, want completed with rooms 3", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestFastestRunsOnlyCompleted(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		run Run
	}{
		{Run{Rooms: 3, Duration: 80 * time.Second, Completed: true}},
		{Run{Rooms: 1, Duration: 10 * time.Second}},
		{Run{Rooms: 3, Duration: 60 * time.Second, Completed: true}},
	}
	for _, tt := range tests {
		if _, err := store.SaveRun(tt.run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.FastestRuns(10)
	if err != nil {
		t.Fatalf("FastestRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FastestRuns() returned %d runs, want 2", len(got))
	}
	if got[0].Duration != 60*time.Second || got[1].Duration != 80*time.Second {
		t.Errorf("order = %v, %v", got[0].Duration, got[1].Duration)
	}
}

func TestSummarize(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() on empty store failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestDuration != 0 {
		t.Errorf("empty summary = %+v", empty)
	}

	for _, r := range []Run{
		{Rooms: 3, Deaths: 2, Duration: 50 * time.Second, Completed: true},
		{Rooms: 1, Deaths: 5, Duration: 5 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 2 || sum.Completed != 1 {
		t.Errorf("Runs/Completed = %d/%d, want 2/1", sum.Runs, sum.Completed)
	}
	if sum.BestDuration != 50*time.Second {
		t.Errorf("BestDuration = %v, want 50s", sum.BestDuration)
	}
	if sum.TotalDeaths != 7 {
		t.Errorf("TotalDeaths = %d, want 7", sum.TotalDeaths)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Rooms: 1, Duration: time.Second}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	got, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("RecentRuns() after clear returned %d runs", len(got))
	}
}

func TestRecordRunContinuedKeepsOneRow(t *testing.T) {
	store := openTestStore(t)

	// Quit after two rooms with 3 deaths.
	quit := Run{Rooms: 2, Deaths: 3, Rotations: 5, Duration: 40 * time.Second}
	id, err := store.RecordRun(quit)
	if err != nil {
		t.Fatalf("RecordRun(quit) failed: %v", err)
	}

	// Continued and finished; counters carry on from the save.
	done := Run{ID: id, Rooms: 4, Deaths: 4, Rotations: 9, Duration: 70 * time.Second, Completed: true}
	again, err := store.RecordRun(done)
	if err != nil {
		t.Fatalf("RecordRun(done) failed: %v", err)
	}
	if again != id {
		t.Errorf("RecordRun() returned id %d, expected the existing %d", again, id)
	}

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 1 || sum.Completed != 1 || sum.TotalDeaths != 4 {
		t.Errorf("Runs/Completed/TotalDeaths = %d/%d/%d, want 1/1/4", sum.Runs, sum.Completed, sum.TotalDeaths)
	}
	if sum.BestDuration != 70*time.Second {
		t.Errorf("BestDuration = %v, want 70s", sum.BestDuration)
	}
}

func TestRecordRunAfterClearInsertsAgain(t *testing.T) {
	store := openTestStore(t)

	id, err := store.RecordRun(Run{Rooms: 1, Duration: time.Second})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if _, err := store.RecordRun(Run{ID: id, Rooms: 3, Duration: 9 * time.Second, Completed: true}); err != nil {
		t.Fatalf("RecordRun() after clear failed: %v", err)
	}
	got, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 1 || got[0].Rooms != 3 || !got[0].Completed {
		t.Errorf("RecentRuns() = %+v, want the one continued run", got)
	}
}
