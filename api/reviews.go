package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/daboigbae/lanefinder/app"
	"github.com/daboigbae/lanefinder/db"
)

func init() {
	registerRoute(func(lanefinder *app.Application, router *http.ServeMux) {
		router.Handle("GET /venues/{slug}/reviews", routeHandler(lanefinder, listReviewsHandler))
		router.Handle("POST /venues/{slug}/reviews", routeHandler(lanefinder, createReviewHandler))
		router.Handle("DELETE /venues/{slug}/reviews/{id}", routeHandler(lanefinder, deleteReviewHandler))
	})
}

type CreateReviewRequest struct {
	Author  string `json:"author"`
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Author    string    `json:"author"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func reviewToResponse(rev db.Review) ReviewResponse {
	return ReviewResponse{
		ID:        app.UuidToString(rev.ID),
		VenueID:   app.UuidToString(rev.VenueID),
		Author:    rev.Author,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		CreatedAt: rev.CreatedAt.Time,
	}
}

func listReviewsHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	venue, err := lanefinder.DB.GetVenueBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list reviews"})
		return
	}

	reviews, err := lanefinder.DB.ListReviewsForVenue(r.Context(), venue.ID)
	if err != nil {
		log(r.Context()).Error("Failed to list reviews", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list reviews"})
		return
	}

	responses := make([]ReviewResponse, len(reviews))
	for i, rev := range reviews {
		responses[i] = reviewToResponse(rev)
	}
	writeJsonResponse(w, http.StatusOK, responses)
}

func createReviewHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Author == "" {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "author is required"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "rating must be between 1 and 5"})
		return
	}

	venue, err := lanefinder.DB.GetVenueBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
		return
	}

	review, err := lanefinder.DB.InsertReview(r.Context(), db.InsertReviewParams{
		ID:      pgtype.UUID{Bytes: uuid.Must(uuid.NewV7()), Valid: true},
		VenueID: venue.ID,
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		log(r.Context()).Error("Failed to insert review", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
		return
	}

	// The cached directory carries the rating aggregates, so recompute them
	// and invalidate before responding.
	if _, err := lanefinder.DB.RefreshVenueRating(r.Context(), venue.ID); err != nil {
		log(r.Context()).Error("Failed to refresh venue rating", "error", err, "slug", slug)
	}

	lanefinder.InvalidateVenues(app.VenueChange{
		Type:    app.ChangeReviewAdded,
		VenueID: app.UuidToString(venue.ID),
		Slug:    venue.Slug,
	})

	log(r.Context()).Info("Review submitted",
		"venue_id", app.UuidToString(venue.ID),
		"slug", venue.Slug,
		"rating", req.Rating,
	)

	writeJsonResponse(w, http.StatusCreated, reviewToResponse(review))
}

// deleteReviewHandler removes a review (admin moderation) and recomputes the
// venue's rating aggregates.
func deleteReviewHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	slug := r.PathValue("slug")
	parsed, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "id must be a valid UUID"})
		return
	}

	venue, err := lanefinder.DB.GetVenueBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete review"})
		return
	}

	if err := lanefinder.DB.DeleteReview(r.Context(), pgtype.UUID{Bytes: parsed, Valid: true}); err != nil {
		log(r.Context()).Error("Failed to delete review", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete review"})
		return
	}

	if _, err := lanefinder.DB.RefreshVenueRating(r.Context(), venue.ID); err != nil {
		log(r.Context()).Error("Failed to refresh venue rating", "error", err, "slug", slug)
	}

	lanefinder.InvalidateVenues(app.VenueChange{
		Type:    app.ChangeReviewRemoved,
		VenueID: app.UuidToString(venue.ID),
		Slug:    venue.Slug,
	})

	w.WriteHeader(http.StatusNoContent)
}
