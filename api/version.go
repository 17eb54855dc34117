package api

import (
	"net/http"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/config"
)

func init() {
	registerRoute(func(app *app.Application, router *http.ServeMux) {
		router.Handle("/version", routeHandler(app, versionApiHandler))
	})
}

type VersionResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
}

func versionApiHandler(app *app.Application, w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, VersionResponse{
		App:     "lanefinder",
		Version: config.Version,
	})
}
