package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/db"
	"github.com/daboigbae/lanefinder/testutil"
)

// callHandler invokes an appHandler via routeHandler with the given app and request.
func callHandler(t *testing.T, lanefinder *app.Application, handler appHandler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	routeHandler(lanefinder, handler).ServeHTTP(rec, req)
	return rec
}

// serveMux routes the request through a fresh API mux so path values are
// populated for handlers using r.PathValue.
func serveMux(t *testing.T, lanefinder *app.Application, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := http.NewServeMux()
	AddApis(lanefinder, router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListVenues_ServedFromCache(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	venues := []db.Venue{
		testutil.NewVenue(),
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Rose City Bowl"
			v.Slug = "rose-city-bowl"
			v.City = "Portland"
			v.State = "OR"
		}),
	}
	mockDB.On("ListVenues", mock.Anything).Return(venues, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	rec := callHandler(t, lanefinder, listVenuesHandler, req)

	var resp VenueListResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, 2, resp.Count)

	// The second request is served from the cache; the Once() above makes a
	// second database load fail the test.
	rec = callHandler(t, lanefinder, listVenuesHandler, httptest.NewRequest(http.MethodGet, "/venues", nil))
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, 2, resp.Count)

	mockDB.AssertExpectations(t)
}

func TestListVenues_Filters(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	venues := []db.Venue{
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Sunset Lanes"
			v.City = "Portland"
			v.State = "OR"
			v.Amenities = []string{"bar"}
		}),
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Mission Alley"
			v.City = "San Francisco"
			v.State = "CA"
			v.Amenities = []string{"arcade"}
		}),
	}
	mockDB.On("ListVenues", mock.Anything).Return(venues, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/venues?state=or", nil)
	rec := callHandler(t, lanefinder, listVenuesHandler, req)

	var resp VenueListResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Sunset Lanes", resp.Venues[0].Name)

	req = httptest.NewRequest(http.MethodGet, "/venues?amenity=arcade", nil)
	rec = callHandler(t, lanefinder, listVenuesHandler, req)
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Mission Alley", resp.Venues[0].Name)
}

func TestGetVenue_Success(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	venue := testutil.NewVenue()
	mockDB.On("GetVenueBySlug", mock.Anything, "test-lanes").Return(venue, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/venues/test-lanes", nil)
	rec := serveMux(t, lanefinder, req)

	var resp VenueResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, "Test Lanes", resp.Name)
	assert.Equal(t, app.UuidToString(venue.ID), resp.ID)
}

func TestGetVenue_NotFound(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	mockDB.On("GetVenueBySlug", mock.Anything, "missing").Return(db.Venue{}, pgx.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/venues/missing", nil)
	rec := serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusNotFound, "venue not found")
}

func TestCreateVenue_MissingAdminSecret(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/venues", map[string]any{
		"name": "Sunset Lanes", "city": "Portland", "state": "OR",
	})
	rec := callHandler(t, lanefinder, createVenueHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusUnauthorized, "admin secret")
}

func TestCreateVenue_MissingName(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/venues", map[string]any{
		"city": "Portland", "state": "OR",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := callHandler(t, lanefinder, createVenueHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusBadRequest, "name is required")
}

func TestCreateVenue_DuplicateSlug(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	existing := testutil.NewVenue(func(v *db.Venue) {
		v.Name = "Sunset Lanes"
		v.Slug = "sunset-lanes"
	})
	mockDB.On("GetVenueBySlug", mock.Anything, "sunset-lanes").Return(existing, nil)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/venues", map[string]any{
		"name": "Sunset Lanes", "city": "Portland", "state": "OR",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := callHandler(t, lanefinder, createVenueHandler, req)
	testutil.AssertJSONError(t, rec, http.StatusConflict, "already exists")
}

func TestCreateVenue_Success(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	created := testutil.NewVenue(func(v *db.Venue) {
		v.Name = "Sunset Lanes"
		v.Slug = "sunset-lanes"
		v.City = "Portland"
		v.State = "OR"
	})

	mockDB.On("GetVenueBySlug", mock.Anything, "sunset-lanes").Return(db.Venue{}, pgx.ErrNoRows)
	mockDB.On("InsertVenue", mock.Anything, mock.MatchedBy(func(arg db.InsertVenueParams) bool {
		return arg.Name == "Sunset Lanes" && arg.Slug == "sunset-lanes" && arg.ID.Valid
	})).Return(created, nil)

	changes, unsubscribe := lanefinder.Changes.Subscribe()
	defer unsubscribe()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/venues", map[string]any{
		"name": "Sunset Lanes", "city": "Portland", "state": "OR",
		"amenities": []string{"bar"},
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := callHandler(t, lanefinder, createVenueHandler, req)

	var resp VenueResponse
	testutil.AssertJSONResponse(t, rec, http.StatusCreated, &resp)
	assert.Equal(t, "sunset-lanes", resp.Slug)

	// The write path must invalidate and announce the change.
	change := <-changes
	assert.Equal(t, app.ChangeVenueCreated, change.Type)
	assert.Equal(t, "sunset-lanes", change.Slug)

	mockDB.AssertExpectations(t)
}

func TestUpdateVenue_InvalidID(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/venues/not-a-uuid", map[string]any{
		"name": "Sunset Lanes", "city": "Portland", "state": "OR",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusBadRequest, "valid UUID")
}

func TestUpdateVenue_NotFound(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	id := uuid.Must(uuid.NewV7())
	mockDB.On("GetVenueByID", mock.Anything, mock.Anything).Return(db.Venue{}, pgx.ErrNoRows)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/venues/"+id.String(), map[string]any{
		"name": "Sunset Lanes", "city": "Portland", "state": "OR",
	})
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusNotFound, "venue not found")
}

func TestDeleteVenue_Success(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	venue := testutil.NewVenue()
	mockDB.On("GetVenueByID", mock.Anything, venue.ID).Return(venue, nil)
	mockDB.On("DeleteVenue", mock.Anything, venue.ID).Return(nil)

	changes, unsubscribe := lanefinder.Changes.Subscribe()
	defer unsubscribe()

	req := httptest.NewRequest(http.MethodDelete, "/api/venues/"+app.UuidToString(venue.ID), nil)
	testutil.WithAdminSecret(req, "test-admin-secret")

	rec := serveMux(t, lanefinder, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	change := <-changes
	assert.Equal(t, app.ChangeVenueDeleted, change.Type)

	mockDB.AssertExpectations(t)
}
