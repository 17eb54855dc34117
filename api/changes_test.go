package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/testutil"
)

func TestChangesStream_EmitsEvents(t *testing.T) {
	mockDB := new(testutil.MockQuerier)
	lanefinder := testutil.NewTestApp(mockDB)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/changes", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		changesStreamHandler(lanefinder, rec, req)
	}()

	// Give the handler time to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	lanefinder.Changes.Publish(app.VenueChange{
		Type: app.ChangeVenueCreated,
		Slug: "sunset-lanes",
	})
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not exit after context cancellation")
	}

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: venue_created")
	assert.Contains(t, body, `"slug":"sunset-lanes"`)
	assert.True(t, strings.Contains(body, "id: 1\n"), "event should carry its bus ID")
}
