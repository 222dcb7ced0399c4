package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/solibored/internal/board"
)

// Storage keys
const (
	keyPosition    = "position"
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// SavedPosition is the persisted form of a board.
type SavedPosition struct {
	Mask     uint64    `json:"mask"`
	Removals int       `json:"removals"`
	SavedAt  time.Time `json:"saved_at"`
}

// Preferences stores user settings.
type Preferences struct {
	ShowCoordinates bool      `json:"show_coordinates"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		ShowCoordinates: true,
		LastPlayed:      time.Now(),
	}
}

// Stats stores usage statistics across sessions.
type Stats struct {
	Sessions      int `json:"sessions"`
	TotalRemovals int `json:"total_removals"`
	BestPegsLeft  int `json:"best_pegs_left"` // lowest peg count reached, -1 until recorded
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{BestPegsLeft: -1}
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens the database in the platform data directory.
func Open() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the database in the given directory.
func OpenAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard persists the board together with the removal count.
func (s *Storage) SaveBoard(b board.Board, removals int) error {
	pos := SavedPosition{
		Mask:     b.Mask(),
		Removals: removals,
		SavedAt:  time.Now(),
	}

	data, err := json.Marshal(&pos)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPosition), data)
	})
}

// LoadBoard restores the saved board, or the starting layout if nothing
// has been saved yet. Stored bits outside the playable cross are dropped
// on the way in, so a stale or corrupt record cannot violate the board
// invariant.
func (s *Storage) LoadBoard() (board.Board, int, error) {
	var pos SavedPosition
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPosition))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pos)
		})
	})
	if err != nil {
		return board.New(), 0, err
	}
	if !found {
		return board.New(), 0, nil
	}

	return board.FromMask(pos.Mask), pos.Removals, nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves usage statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads usage statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordSession folds one editing session into the statistics.
func (s *Storage) RecordSession(pegsLeft, removals int) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Sessions++
	stats.TotalRemovals += removals
	if stats.BestPegsLeft < 0 || pegsLeft < stats.BestPegsLeft {
		stats.BestPegsLeft = pegsLeft
	}

	return s.SaveStats(stats)
}
