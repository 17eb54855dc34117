package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/daboigbae/lanefinder/app"
)

func init() {
	registerRoute(func(lanefinder *app.Application, router *http.ServeMux) {
		router.Handle("GET /changes", routeHandler(lanefinder, changesStreamHandler))
	})
}

const keepAliveInterval = 30 * time.Second

// changesStreamHandler streams venue directory changes as server-sent
// events. Each mutation that invalidates the venue cache produces one
// event; clients use the stream to refresh without polling.
func changesStreamHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	changes, unsubscribe := lanefinder.Changes.Subscribe()
	defer unsubscribe()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case change := <-changes:
			data, err := json.Marshal(change)
			if err != nil {
				log(r.Context()).Error("Failed to marshal venue change", "error", err)
				continue
			}
			fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", change.ID, change.Type, data)
			flusher.Flush()
		}
	}
}
