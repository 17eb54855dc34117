package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/config"
)

type routeRegistrationFunc func(lanefinder *app.Application, router *http.ServeMux)

var routes []routeRegistrationFunc

func registerRoute(r routeRegistrationFunc) {
	routes = append(routes, r)
}

func AddApis(lanefinder *app.Application, router *http.ServeMux) {
	slog.Debug("Registering all API Endpoints", "count", len(routes))
	apiRouter := http.NewServeMux()
	for _, r := range routes {
		r(lanefinder, apiRouter)
	}
	router.Handle("/api/", http.StripPrefix("/api", apiRouter))
}

func log(ctx context.Context) *slog.Logger {
	log := ctx.Value(config.LoggerContextKey)
	if log == nil {
		return slog.Default()
	} else {
		return log.(*slog.Logger)
	}
}

type appHandler func(lanefinder *app.Application, w http.ResponseWriter, r *http.Request)

func routeHandler(lanefinder *app.Application, handler appHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler(lanefinder, w, r)
	})
}

func writeJsonResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// requireAdmin verifies the admin pre-shared secret header. Returns false
// (after writing a 401) when the request is not authorized.
func requireAdmin(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) bool {
	adminSecret := r.Header.Get("X-Lanefinder-Admin-Secret")
	if lanefinder.Config.AdminSecret == "" || adminSecret != lanefinder.Config.AdminSecret {
		writeJsonResponse(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or missing admin secret"})
		return false
	}
	return true
}
