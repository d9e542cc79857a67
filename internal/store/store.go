package store

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/amazonsengine/amazons/internal/eval"
)

// Storage keys
const (
	keyConfig = "config"
	keyStats  = "stats"
)

// Config stores the engine's persisted tuning knobs: the per-move time
// budget and any evaluator weight overrides (spec.md §4.2, §4.4). A
// zero-value Config's TimeBudget is meaningless; callers should go through
// DefaultConfig rather than constructing one directly.
type Config struct {
	TimeBudget time.Duration `json:"time_budget"`
	Weights    eval.Weights  `json:"weights"`
}

// DefaultConfig returns the engine's out-of-the-box tuning: a five-second
// move budget and the evaluator's declared default weights.
func DefaultConfig() *Config {
	return &Config{
		TimeBudget: 5 * time.Second,
		Weights:    eval.DefaultWeights,
	}
}

// MatchStats accumulates results across engine matches played from the CLI.
type MatchStats struct {
	MatchesPlayed int            `json:"matches_played"`
	Wins          int            `json:"wins"`
	Losses        int            `json:"losses"`
	WinsBySize    map[string]int `json:"wins_by_board_size"`
	TotalPlayTime time.Duration  `json:"total_play_time"`
	LongestStreak int            `json:"longest_win_streak"`
	CurrentStreak int            `json:"current_streak"`
}

// NewMatchStats returns empty match statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{
		WinsBySize: make(map[string]int),
	}
}

// MatchResult describes the outcome of one completed match, as recorded by
// internal/cli when the session quits after the game is over.
type MatchResult struct {
	Won       bool
	BoardSize int
	Duration  time.Duration
}

// Store wraps BadgerDB for persisting Config and MatchStats between CLI
// invocations, the same embedded key-value store the teacher repository
// uses for its own UI preferences and game statistics.
type Store struct {
	db *badger.DB
}

// Open creates or opens the engine's BadgerDB database in the platform
// data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConfig saves the engine's tuning configuration.
func (s *Store) SaveConfig(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyConfig), data)
	})
}

// LoadConfig loads the engine's tuning configuration, returning
// DefaultConfig if none has been saved yet.
func (s *Store) LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyConfig))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, cfg)
		})
	})

	return cfg, err
}

// SaveStats saves match statistics.
func (s *Store) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads match statistics, returning empty stats if none have
// been recorded yet.
func (s *Store) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
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

// RecordMatch records a completed match and updates statistics.
func (s *Store) RecordMatch(result MatchResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.MatchesPlayed++
	stats.TotalPlayTime += result.Duration

	sizeKey := boardSizeKey(result.BoardSize)

	if result.Won {
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
		stats.WinsBySize[sizeKey]++
	} else {
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

func boardSizeKey(n int) string {
	switch n {
	case 10:
		return "10x10"
	default:
		return "other"
	}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *MatchStats) WinRate() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.MatchesPlayed) * 100
}
