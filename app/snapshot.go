package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/daboigbae/lanefinder/db"
)

// snapshotVersion is part of the snapshot filename. Bumping it orphans every
// previously written snapshot file with no migration: the next load misses
// and the directory is repopulated from the database.
const snapshotVersion = 3

// Snapshot is the persisted form of the venue cache: the complete directory
// and when it was fetched, written as a single JSON blob.
type Snapshot struct {
	Venues    []db.Venue `json:"venues"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// SnapshotStore persists a snapshot across process restarts. Implementations
// must swallow their own I/O failures and report them as a miss; storage
// problems never reach a cache caller.
type SnapshotStore interface {
	Load() (Snapshot, bool)
	Save(Snapshot)
	Clear()
}

// FileSnapshotStore keeps the snapshot in a versioned JSON file.
type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(dir string) *FileSnapshotStore {
	return &FileSnapshotStore{
		path: filepath.Join(dir, fmt.Sprintf("venues-v%d.json", snapshotVersion)),
	}
}

func (s *FileSnapshotStore) Load() (Snapshot, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Snapshot read failed", "path", s.path, "error", err)
		}
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Debug("Snapshot decode failed", "path", s.path, "error", err)
		return Snapshot{}, false
	}
	return snap, true
}

func (s *FileSnapshotStore) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		slog.Debug("Snapshot encode failed", "path", s.path, "error", err)
		return
	}

	// Write-then-rename so a crash mid-write never leaves a partial snapshot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		slog.Debug("Snapshot write failed", "path", tmp, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		slog.Debug("Snapshot rename failed", "path", s.path, "error", err)
	}
}

func (s *FileSnapshotStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Snapshot remove failed", "path", s.path, "error", err)
	}
}
