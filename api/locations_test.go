package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/db"
	"github.com/daboigbae/lanefinder/testutil"
)

func locationFixture() []db.Venue {
	return []db.Venue{
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Sunset Lanes"
			v.Slug = "sunset-lanes"
			v.City = "Portland"
			v.State = "OR"
			v.RatingAvg = 4.5
		}),
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Rose City Bowl"
			v.Slug = "rose-city-bowl"
			v.City = "Portland"
			v.State = "OR"
			v.RatingAvg = 3.9
		}),
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Bend Alley"
			v.Slug = "bend-alley"
			v.City = "Bend"
			v.State = "OR"
			v.RatingAvg = 4.1
		}),
		testutil.NewVenue(func(v *db.Venue) {
			v.Name = "Mission Alley"
			v.Slug = "mission-alley"
			v.City = "San Francisco"
			v.State = "CA"
			v.RatingAvg = 4.8
		}),
	}
}

func TestListStates(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)
	mockDB.On("ListVenues", mock.Anything).Return(locationFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/states", nil)
	rec := callHandler(t, lanefinder, listStatesHandler, req)

	var resp []app.StateSummary
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "CA", resp[0].State)
	assert.Equal(t, "OR", resp[1].State)
	assert.Equal(t, 3, resp[1].VenueCount)
	assert.Equal(t, 2, resp[1].CityCount)
}

func TestStateDetail_GroupsByCity(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)
	mockDB.On("ListVenues", mock.Anything).Return(locationFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/states/or", nil)
	rec := serveMux(t, lanefinder, req)

	var resp StateDetailResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, "OR", resp.State)
	require.Len(t, resp.Cities, 2)
	assert.Equal(t, "Bend", resp.Cities[0].City)
	assert.Equal(t, "Portland", resp.Cities[1].City)

	// Within a city, higher-rated venues come first.
	portland := resp.Cities[1]
	require.Len(t, portland.Venues, 2)
	assert.Equal(t, "Sunset Lanes", portland.Venues[0].Name)
}

func TestStateDetail_NotFound(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)
	mockDB.On("ListVenues", mock.Anything).Return(locationFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/states/tx", nil)
	rec := serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusNotFound, "no venues in this state")
}

func TestCityDetail(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)
	mockDB.On("ListVenues", mock.Anything).Return(locationFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/states/or/cities/portland", nil)
	rec := serveMux(t, lanefinder, req)

	var resp CityDetailResponse
	testutil.AssertJSONResponse(t, rec, http.StatusOK, &resp)
	assert.Equal(t, "Portland", resp.City)
	require.Len(t, resp.Venues, 2)

	req = httptest.NewRequest(http.MethodGet, "/api/states/or/cities/salem", nil)
	rec = serveMux(t, lanefinder, req)
	testutil.AssertJSONError(t, rec, http.StatusNotFound, "no venues in this city")
}
