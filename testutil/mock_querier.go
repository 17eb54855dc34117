package testutil

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"

	"github.com/daboigbae/lanefinder/db"
)

// MockQuerier is a testify mock implementation of db.Querier.
type MockQuerier struct {
	mock.Mock
}

var _ db.Querier = (*MockQuerier)(nil)

func (m *MockQuerier) DeleteReview(ctx context.Context, id pgtype.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) DeleteVenue(ctx context.Context, id pgtype.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuerier) GetVenueByID(ctx context.Context, id pgtype.UUID) (db.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Venue), args.Error(1)
}

func (m *MockQuerier) GetVenueBySlug(ctx context.Context, slug string) (db.Venue, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(db.Venue), args.Error(1)
}

func (m *MockQuerier) InsertReview(ctx context.Context, arg db.InsertReviewParams) (db.Review, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Review), args.Error(1)
}

func (m *MockQuerier) InsertSuggestion(ctx context.Context, arg db.InsertSuggestionParams) (db.Suggestion, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Suggestion), args.Error(1)
}

func (m *MockQuerier) InsertVenue(ctx context.Context, arg db.InsertVenueParams) (db.Venue, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Venue), args.Error(1)
}

func (m *MockQuerier) ListReviewsForVenue(ctx context.Context, venueID pgtype.UUID) ([]db.Review, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).([]db.Review), args.Error(1)
}

func (m *MockQuerier) ListSuggestions(ctx context.Context, status string) ([]db.Suggestion, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]db.Suggestion), args.Error(1)
}

func (m *MockQuerier) ListVenues(ctx context.Context) ([]db.Venue, error) {
	args := m.Called(ctx)
	return args.Get(0).([]db.Venue), args.Error(1)
}

func (m *MockQuerier) RefreshVenueRating(ctx context.Context, id pgtype.UUID) (db.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Venue), args.Error(1)
}

func (m *MockQuerier) UpdateSuggestionStatus(ctx context.Context, arg db.UpdateSuggestionStatusParams) (db.Suggestion, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Suggestion), args.Error(1)
}

func (m *MockQuerier) UpdateVenue(ctx context.Context, arg db.UpdateVenueParams) (db.Venue, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Venue), args.Error(1)
}
