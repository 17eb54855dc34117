package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/db"
	"github.com/daboigbae/lanefinder/testutil"
)

func TestCreateSuggestion_Success(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	suggestion := testutil.NewSuggestion()
	mockDB.On("InsertSuggestion", mock.Anything, mock.MatchedBy(func(arg db.InsertSuggestionParams) bool {
		return arg.Name == "test-suggester" && arg.Message == "The phone number for this venue is out of date."
	})).Return(suggestion, nil)

	// Suggestions are a public write path, no admin secret needed.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/suggestions", map[string]any{
		"name":    "test-suggester",
		"email":   "suggester@example.com",
		"message": "The phone number for this venue is out of date.",
	})
	rec := callHandler(t, lanefinder, createSuggestionHandler, req)

	var resp SuggestionResponse
	testutil.AssertJSONResponse(t, rec, http.StatusCreated, &resp)
	assert.Equal(t, "open", resp.Status)
	assert.Nil(t, resp.VenueID)

	mockDB.AssertExpectations(t)
}

func TestCreateSuggestion_InvalidVenueID(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/suggestions", map[string]any{
		"name":     "test-suggester",
		"message":  "Wrong address listed.",
		"venue_id": "not-a-uuid",
	})
	rec := callHandler(t, lanefinder, createSuggestionHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusBadRequest, "valid UUID")
}

func TestCreateSuggestion_MissingMessage(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/suggestions", map[string]any{
		"name": "test-suggester",
	})
	rec := callHandler(t, lanefinder, createSuggestionHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusBadRequest, "message is required")
}

func TestListSuggestions_RequiresAdmin(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	rec := callHandler(t, lanefinder, listSuggestionsHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusUnauthorized, "admin secret")
}

func TestListSuggestions_DefaultsToOpen(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	suggestions := []db.Suggestion{testutil.NewSuggestion()}
	mockDB.On("ListSuggestions", mock.Anything, "open").Return(suggestions, nil)

	req := httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := callHandler(t, lanefinder, listSuggestionsHandler, req)

	var resp []SuggestionResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)

	mockDB.AssertExpectations(t)
}

func TestListSuggestions_RejectsUnknownStatus(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/suggestions?status=bogus", nil)
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := callHandler(t, lanefinder, listSuggestionsHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusBadRequest, "status must be one of")
}

func TestUpdateSuggestion_NotFound(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	mockDB.On("UpdateSuggestionStatus", mock.Anything, mock.Anything).
		Return(db.Suggestion{}, pgx.ErrNoRows)

	id := testutil.NewUUID()
	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/suggestions/"+app.UuidToString(id), map[string]any{
		"status": "accepted",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusNotFound, "suggestion not found")
}

func TestUpdateSuggestion_Success(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	suggestion := testutil.NewSuggestion(func(s *db.Suggestion) { s.Status = "accepted" })
	mockDB.On("UpdateSuggestionStatus", mock.Anything, db.UpdateSuggestionStatusParams{
		ID:     suggestion.ID,
		Status: "accepted",
	}).Return(suggestion, nil)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/suggestions/"+app.UuidToString(suggestion.ID), map[string]any{
		"status": "accepted",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := serveMux(t, lanefinder, req)

	var resp SuggestionResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, "accepted", resp.Status)

	mockDB.AssertExpectations(t)
}
