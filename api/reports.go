package api

import (
	"net/http"

	"github.com/daboigbae/lanefinder/app"
)

func init() {
	registerRoute(func(lanefinder *app.Application, router *http.ServeMux) {
		router.Handle("GET /reports/pricing", routeHandler(lanefinder, pricingReportHandler))
	})
}

// pricingReportHandler aggregates game and shoe rental pricing per state
// from the cached directory. With ?state= the report is narrowed to one
// state.
func pricingReportHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	venues := lanefinder.Venues.GetAll(r.Context())

	if state := r.URL.Query().Get("state"); state != "" {
		venues = app.VenuesInState(venues, state)
	}

	summaries := app.PricingByState(venues)
	if summaries == nil {
		summaries = []app.PricingSummary{}
	}
	writeJsonResponse(w, http.StatusOK, summaries)
}
