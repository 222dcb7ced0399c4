package storage

import (
	"testing"

	"github.com/hailam/solibored/internal/board"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return s
}

func TestBoardRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	t.Run("MissingReturnsStart", func(t *testing.T) {
		b, removals, err := s.LoadBoard()
		if err != nil {
			t.Fatalf("LoadBoard failed: %v", err)
		}
		if b != board.New() {
			t.Errorf("fresh store should load the starting layout:\n%s", b.String())
		}
		if removals != 0 {
			t.Errorf("fresh store reported %d removals", removals)
		}
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		want := board.New()
		want.RemoveAt(board.D4)
		want.RemoveAt(board.F5)

		if err := s.SaveBoard(want, 2); err != nil {
			t.Fatalf("SaveBoard failed: %v", err)
		}

		got, removals, err := s.LoadBoard()
		if err != nil {
			t.Fatalf("LoadBoard failed: %v", err)
		}
		if got != want {
			t.Errorf("loaded board differs:\ngot\n%swant\n%s", got.String(), want.String())
		}
		if removals != 2 {
			t.Errorf("removals = %d, want 2", removals)
		}
	})
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if !prefs.ShowCoordinates {
		t.Error("expected coordinates shown by default")
	}

	prefs.ShowCoordinates = false
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if loaded.ShowCoordinates {
		t.Error("saved preference was not persisted")
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("LastPlayed should be stamped on save")
	}
}

func TestStats(t *testing.T) {
	s := openTestStorage(t)

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.Sessions != 0 || stats.BestPegsLeft != -1 {
		t.Errorf("unexpected initial stats: %+v", stats)
	}

	if err := s.RecordSession(8, 24); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if err := s.RecordSession(12, 20); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	stats, err = s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", stats.Sessions)
	}
	if stats.TotalRemovals != 44 {
		t.Errorf("TotalRemovals = %d, want 44", stats.TotalRemovals)
	}
	if stats.BestPegsLeft != 8 {
		t.Errorf("BestPegsLeft = %d, want 8", stats.BestPegsLeft)
	}
}
