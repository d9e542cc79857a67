package store

import (
	"os"
	"testing"
	"time"

	"github.com/amazonsengine/amazons/internal/eval"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		if cfg.TimeBudget != 5*time.Second {
			t.Errorf("expected 5s time budget, got %s", cfg.TimeBudget)
		}
		if cfg.Weights != eval.DefaultWeights {
			t.Errorf("expected default evaluator weights, got %+v", cfg.Weights)
		}
	})
}

func TestMatchStats(t *testing.T) {
	t.Run("NewMatchStats", func(t *testing.T) {
		stats := NewMatchStats()
		if stats.MatchesPlayed != 0 {
			t.Errorf("expected 0 matches played")
		}
		if stats.WinRate() != 0 {
			t.Errorf("expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &MatchStats{
			MatchesPlayed: 10,
			Wins:          5,
			Losses:        5,
		}
		rate := stats.WinRate()
		if rate != 50 {
			t.Errorf("expected 50%% win rate, got %.2f%%", rate)
		}
	})
}

func TestStoreRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "amazons-store-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Setenv("XDG_DATA_HOME", tmpDir)

	s, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	t.Run("ConfigRoundTrip", func(t *testing.T) {
		cfg := &Config{TimeBudget: 2 * time.Second, Weights: eval.Weights{Mobility: 1}}
		if err := s.SaveConfig(cfg); err != nil {
			t.Fatalf("SaveConfig failed: %v", err)
		}
		loaded, err := s.LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if *loaded != *cfg {
			t.Errorf("expected %+v, got %+v", cfg, loaded)
		}
	})

	t.Run("RecordMatch", func(t *testing.T) {
		if err := s.RecordMatch(MatchResult{Won: true, BoardSize: 10, Duration: time.Minute}); err != nil {
			t.Fatalf("RecordMatch failed: %v", err)
		}
		if err := s.RecordMatch(MatchResult{Won: false, BoardSize: 10, Duration: time.Minute}); err != nil {
			t.Fatalf("RecordMatch failed: %v", err)
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if stats.MatchesPlayed != 2 {
			t.Errorf("expected 2 matches played, got %d", stats.MatchesPlayed)
		}
		if stats.Wins != 1 || stats.Losses != 1 {
			t.Errorf("expected 1 win and 1 loss, got wins=%d losses=%d", stats.Wins, stats.Losses)
		}
		if stats.WinsBySize["10x10"] != 1 {
			t.Errorf("expected 1 win recorded for 10x10, got %d", stats.WinsBySize["10x10"])
		}
	})
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}
