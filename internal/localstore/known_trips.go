// Package localstore persists the set of trips the user is part of on the
// local disk, keyed by trip ID. It backs the "skip the confirmation gate
// on future visits" behavior and the home screen's trip bookmark.
package localstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// defaultDirName is the data directory under the user's home when no
// explicit path is given.
const defaultDirName = ".planner"

// KnownTrips is a diskv-backed, idempotent trip bookmark store.
// One file per trip ID; the value records when the trip was saved.
type KnownTrips struct {
	d *diskv.Diskv
}

// entry is the on-disk JSON value for one known trip.
type entry struct {
	TripID  uuid.UUID `json:"trip_id"`
	SavedAt time.Time `json:"saved_at"`
}

// Open creates a KnownTrips store rooted at dir.
// An empty dir falls back to ~/.planner/trips.
func Open(dir string) (*KnownTrips, error) {
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("localstore.Open: resolve home: %w", err)
		}
		dir = filepath.Join(home, defaultDirName, "trips")
	}
	return &KnownTrips{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

// Save marks a trip as known. Saving an already known trip overwrites its
// entry, so repeated saves are idempotent.
func (s *KnownTrips) Save(id uuid.UUID) error {
	val, err := json.Marshal(entry{TripID: id, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("localstore.KnownTrips.Save: %w", err)
	}
	if err := s.d.Write(id.String(), val); err != nil {
		return fmt.Errorf("localstore.KnownTrips.Save: %w", err)
	}
	return nil
}

// Remove forgets a trip. Removing an unknown trip is a no-op.
func (s *KnownTrips) Remove(id uuid.UUID) error {
	key := id.String()
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("localstore.KnownTrips.Remove: %w", err)
	}
	return nil
}

// Contains reports whether the trip has been saved.
func (s *KnownTrips) Contains(id uuid.UUID) bool {
	return s.d.Has(id.String())
}

// List returns all known trip IDs, sorted for deterministic display.
func (s *KnownTrips) List() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for key := range s.d.Keys(nil) {
		id, err := uuid.Parse(key)
		if err != nil {
			// Foreign files in the data dir are skipped, not fatal.
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}
