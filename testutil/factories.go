package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/config"
	"github.com/daboigbae/lanefinder/db"
)

// NewUUID returns a pgtype.UUID with a new random UUID.
func NewUUID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.Must(uuid.NewV7()), Valid: true}
}

// NewTimestamp returns a pgtype.Timestamptz set to now.
func NewTimestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
}

// VenueOpt is a functional option for building test Venues.
type VenueOpt func(*db.Venue)

// NewVenue creates a db.Venue with sensible defaults. Use options to override.
func NewVenue(opts ...VenueOpt) db.Venue {
	v := db.Venue{
		ID:                NewUUID(),
		Name:              "Test Lanes",
		Slug:              "test-lanes",
		Address:           "123 Main St",
		City:              "Springfield",
		State:             "IL",
		Zip:               "62701",
		Latitude:          39.78,
		Longitude:         -89.65,
		Lanes:             24,
		PricePerGameCents: 650,
		ShoeRentalCents:   400,
		Amenities:         []string{"bar", "arcade"},
		RatingAvg:         4.2,
		RatingCount:       17,
		Verified:          true,
		CreatedAt:         NewTimestamp(),
		UpdatedAt:         NewTimestamp(),
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// ReviewOpt is a functional option for building test Reviews.
type ReviewOpt func(*db.Review)

// NewReview creates a db.Review with sensible defaults.
func NewReview(opts ...ReviewOpt) db.Review {
	r := db.Review{
		ID:        NewUUID(),
		VenueID:   NewUUID(),
		Author:    "test-reviewer",
		Rating:    4,
		Comment:   "Great lanes, friendly staff.",
		CreatedAt: NewTimestamp(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SuggestionOpt is a functional option for building test Suggestions.
type SuggestionOpt func(*db.Suggestion)

// NewSuggestion creates a db.Suggestion with sensible defaults.
func NewSuggestion(opts ...SuggestionOpt) db.Suggestion {
	s := db.Suggestion{
		ID:        NewUUID(),
		Name:      "test-suggester",
		Email:     "suggester@example.com",
		Message:   "The phone number for this venue is out of date.",
		Status:    "open",
		CreatedAt: NewTimestamp(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// AppOpt is a functional option for building test Applications.
type AppOpt func(*app.Application)

// NewTestApp creates an app.Application suitable for testing.
// It uses the provided mock Querier and sensible config defaults.
// The venue cache has no snapshot store, so only the in-memory tier is live.
func NewTestApp(mockDB *MockQuerier, opts ...AppOpt) *app.Application {
	a := &app.Application{
		Config: config.AppConfig{
			Port:             8010,
			AdminSecret:      "test-admin-secret",
			CacheTTL:         8 * time.Hour,
			ChangeBufferSize: 16,
		},
		DB:      mockDB,
		Venues:  app.NewVenueCache(mockDB, nil, 8*time.Hour),
		Changes: app.NewChangeBus(16),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
