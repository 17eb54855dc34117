package api

import (
	"net/http"

	"github.com/daboigbae/lanefinder/app"
)

func init() {
	registerRoute(func(lanefinder *app.Application, router *http.ServeMux) {
		router.Handle("GET /states", routeHandler(lanefinder, listStatesHandler))
		router.Handle("GET /states/{state}", routeHandler(lanefinder, stateDetailHandler))
		router.Handle("GET /states/{state}/cities/{city}", routeHandler(lanefinder, cityDetailHandler))
	})
}

type StateDetailResponse struct {
	State  string              `json:"state"`
	Cities []CityGroupResponse `json:"cities"`
}

type CityGroupResponse struct {
	City   string          `json:"city"`
	Slug   string          `json:"slug"`
	Venues []VenueResponse `json:"venues"`
}

type CityDetailResponse struct {
	State  string          `json:"state"`
	City   string          `json:"city"`
	Venues []VenueResponse `json:"venues"`
}

// listStatesHandler returns the state index with venue and city counts,
// computed from the cached directory.
func listStatesHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	venues := lanefinder.Venues.GetAll(r.Context())
	writeJsonResponse(w, http.StatusOK, app.StateSummaries(venues))
}

// stateDetailHandler returns a state's venues grouped by city, each group
// sorted by rating so the best venues lead.
func stateDetailHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")

	venues := app.VenuesInState(lanefinder.Venues.GetAll(r.Context()), state)
	if len(venues) == 0 {
		writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "no venues in this state"})
		return
	}

	groups := app.GroupByCity(venues)
	cities := make([]CityGroupResponse, len(groups))
	for i, g := range groups {
		cities[i] = CityGroupResponse{
			City:   g.City,
			Slug:   g.Slug,
			Venues: venuesToListResponse(app.SortByRating(g.Venues)).Venues,
		}
	}

	writeJsonResponse(w, http.StatusOK, StateDetailResponse{
		State:  venues[0].State,
		Cities: cities,
	})
}

func cityDetailHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	state := r.PathValue("state")
	city := r.PathValue("city")

	venues := app.VenuesInCity(lanefinder.Venues.GetAll(r.Context()), state, city)
	if len(venues) == 0 {
		writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "no venues in this city"})
		return
	}

	writeJsonResponse(w, http.StatusOK, CityDetailResponse{
		State:  venues[0].State,
		City:   venues[0].City,
		Venues: venuesToListResponse(app.SortByRating(venues)).Venues,
	})
}
