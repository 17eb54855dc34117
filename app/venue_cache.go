package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/daboigbae/lanefinder/db"
)

// VenueLoader is the source of truth for the full venue directory.
// db.Querier satisfies it.
type VenueLoader interface {
	ListVenues(ctx context.Context) ([]db.Venue, error)
}

// provenance records where a GetAll result came from, for logging only.
type provenance int

const (
	provenanceFresh provenance = iota
	provenanceStaleMemory
	provenanceStaleDisk
	provenanceEmpty
)

func (p provenance) String() string {
	switch p {
	case provenanceFresh:
		return "fresh"
	case provenanceStaleMemory:
		return "stale-memory"
	case provenanceStaleDisk:
		return "stale-disk"
	case provenanceEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// VenueCache serves the full denormalized venue list to concurrent callers
// while keeping database load to at most one bulk read per TTL window.
// Snapshots are all-or-nothing: the cache holds either a complete directory
// as of fetchedAt or nothing. Write paths must call Invalidate (via
// Application.InvalidateVenues); the next read reloads.
type VenueCache struct {
	loader VenueLoader
	store  SnapshotStore
	ttl    time.Duration
	group  singleflight.Group
	now    func() time.Time

	mu        sync.RWMutex
	venues    []db.Venue
	fetchedAt time.Time
}

// NewVenueCache creates an empty cache. A nil store disables the persisted
// snapshot tier.
func NewVenueCache(loader VenueLoader, store SnapshotStore, ttl time.Duration) *VenueCache {
	return &VenueCache{
		loader: loader,
		store:  store,
		ttl:    ttl,
		now:    time.Now,
	}
}

// GetAll returns the venue directory, ordered by state, city, name. It
// never returns an error: load failures degrade to the previous in-memory
// snapshot, then the persisted snapshot, then an empty slice. The returned
// slice is shared between callers and must not be mutated.
//
// Resolution order:
//  1. in-memory snapshot within TTL — no I/O
//  2. persisted snapshot within TTL — no database read
//  3. one shared database load; concurrent callers attach to it
func (c *VenueCache) GetAll(ctx context.Context) []db.Venue {
	if venues, ok := c.cached(); ok {
		return venues
	}

	if snap, ok := c.loadSnapshot(); ok && c.now().Sub(snap.FetchedAt) < c.ttl {
		c.install(snap.Venues, snap.FetchedAt)
		log(ctx).Debug("Venue directory restored from snapshot",
			"venues", len(snap.Venues), "fetched_at", snap.FetchedAt)
		return snap.Venues
	}

	result, err, shared := c.group.Do("venues", func() (any, error) {
		// The flight is shared between callers, so it must not die with
		// the winning caller's request context.
		venues, err := c.loader.ListVenues(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		fetchedAt := c.now()
		c.install(venues, fetchedAt)
		c.saveSnapshot(Snapshot{Venues: venues, FetchedAt: fetchedAt})
		return venues, nil
	})
	if err != nil {
		venues, prov := c.fallback()
		log(ctx).Warn("Venue directory load failed, serving degraded data",
			"error", err, "provenance", prov.String(), "venues", len(venues))
		return venues
	}

	venues := result.([]db.Venue)
	if shared {
		log(ctx).Debug("Venue directory load shared with concurrent caller")
	}
	return venues
}

// Invalidate unconditionally drops the in-memory and persisted snapshots.
// The next GetAll reloads from the database even if the old snapshot was
// still within its TTL.
func (c *VenueCache) Invalidate() {
	c.mu.Lock()
	c.venues = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()

	c.clearSnapshot()
}

// cached returns the in-memory snapshot if it exists and is within TTL.
// A zero fetchedAt means no snapshot is held; an empty directory from a
// successful load is a valid snapshot and is served like any other.
func (c *VenueCache) cached() ([]db.Venue, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.venues, true
}

// install replaces the in-memory snapshot wholesale. fetchedAt never moves
// backwards: a snapshot older than what is already held is discarded.
func (c *VenueCache) install(venues []db.Venue, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fetchedAt.Before(c.fetchedAt) {
		return
	}
	c.venues = venues
	c.fetchedAt = fetchedAt
}

// fallback implements the degraded path after a failed load: stale memory,
// then stale disk, then empty.
func (c *VenueCache) fallback() ([]db.Venue, provenance) {
	c.mu.RLock()
	venues := c.venues
	c.mu.RUnlock()
	if len(venues) > 0 {
		return venues, provenanceStaleMemory
	}

	if snap, ok := c.loadSnapshot(); ok && len(snap.Venues) > 0 {
		return snap.Venues, provenanceStaleDisk
	}

	return []db.Venue{}, provenanceEmpty
}

func (c *VenueCache) loadSnapshot() (Snapshot, bool) {
	if c.store == nil {
		return Snapshot{}, false
	}
	return c.store.Load()
}

func (c *VenueCache) saveSnapshot(snap Snapshot) {
	if c.store != nil {
		c.store.Save(snap)
	}
}

func (c *VenueCache) clearSnapshot() {
	if c.store != nil {
		c.store.Clear()
	}
}
