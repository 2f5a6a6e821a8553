// Package stats persists cumulative game outcome counters as a JSON
// file that survives process restarts.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/michaelamar-1/blackjack/internal/fileutil"
	"github.com/michaelamar-1/blackjack/internal/game"
)

// FileStore is a file-backed game.StatsStore. Counters are read,
// incremented and atomically rewritten on every recorded outcome, so
// a crash never loses more than the hand in flight.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given JSON file. The
// file does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// RecordOutcome increments the counters for one resolved hand
func (s *FileStore) RecordOutcome(o game.Outcome) error {
	stats, err := s.load()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch o {
	case game.OutcomePlayer:
		stats.PlayerWins++
	case game.OutcomeDealer:
		stats.DealerWins++
	default:
		stats.Ties++
	}
	return s.save(stats)
}

// CurrentStats returns the persisted counters
func (s *FileStore) CurrentStats() (game.Stats, error) {
	return s.load()
}

func (s *FileStore) load() (game.Stats, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return game.Stats{}, nil
	}
	if err != nil {
		return game.Stats{}, fmt.Errorf("reading stats file: %w", err)
	}

	var stats game.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		// Corrupt stats are reset to zero rather than failing the
		// session; the counters are best-effort history.
		return game.Stats{}, nil
	}
	return stats, nil
}

func (s *FileStore) save(stats game.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating stats dir: %w", err)
		}
	}
	return fileutil.WriteFileAtomic(s.path, data, 0o644)
}
