package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daboigbae/lanefinder/config"
	"github.com/daboigbae/lanefinder/db"
)

type Application struct {
	Config  config.AppConfig
	DB      db.Querier
	Venues  *VenueCache
	Changes *ChangeBus
	dbconn  *pgxpool.Pool
}

func NewApp(config *config.AppConfig) (*Application, error) {
	conn, err := connectToDB(config)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return nil, err
	}
	queries := db.New(conn)

	var store SnapshotStore
	if config.SnapshotDir != "" {
		store = NewFileSnapshotStore(config.SnapshotDir)
	}

	return &Application{
		Config:  *config,
		DB:      queries,
		Venues:  NewVenueCache(queries, store, config.CacheTTL),
		Changes: NewChangeBus(config.ChangeBufferSize),
		dbconn:  conn,
	}, nil
}

// InvalidateVenues drops the cached venue directory and notifies change feed
// subscribers. Every write path that touches venues or their rating
// aggregates must call this before responding; the cache has no visibility
// into writes, so a missed call means stale reads for up to the TTL.
func (a *Application) InvalidateVenues(change VenueChange) {
	a.Venues.Invalidate()
	a.Changes.Publish(change)
}
