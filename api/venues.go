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
		router.Handle("GET /venues", routeHandler(lanefinder, listVenuesHandler))
		router.Handle("GET /venues/{slug}", routeHandler(lanefinder, getVenueHandler))
		router.Handle("POST /venues", routeHandler(lanefinder, createVenueHandler))
		router.Handle("PUT /venues/{id}", routeHandler(lanefinder, updateVenueHandler))
		router.Handle("DELETE /venues/{id}", routeHandler(lanefinder, deleteVenueHandler))
	})
}

type UpsertVenueRequest struct {
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Zip               string   `json:"zip"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Phone             string   `json:"phone"`
	Website           string   `json:"website"`
	Description       string   `json:"description"`
	Lanes             int32    `json:"lanes"`
	PricePerGameCents int32    `json:"price_per_game_cents"`
	ShoeRentalCents   int32    `json:"shoe_rental_cents"`
	Amenities         []string `json:"amenities"`
	Verified          bool     `json:"verified"`
}

type VenueResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Zip               string    `json:"zip"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Phone             string    `json:"phone,omitempty"`
	Website           string    `json:"website,omitempty"`
	Description       string    `json:"description,omitempty"`
	Lanes             int32     `json:"lanes,omitempty"`
	PricePerGameCents int32     `json:"price_per_game_cents,omitempty"`
	ShoeRentalCents   int32     `json:"shoe_rental_cents,omitempty"`
	Amenities         []string  `json:"amenities"`
	RatingAvg         float64   `json:"rating_avg"`
	RatingCount       int32     `json:"rating_count"`
	Verified          bool      `json:"verified"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
	Count  int             `json:"count"`
}

func venueToResponse(v db.Venue) VenueResponse {
	amenities := v.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return VenueResponse{
		ID:                app.UuidToString(v.ID),
		Name:              v.Name,
		Slug:              v.Slug,
		Address:           v.Address,
		City:              v.City,
		State:             v.State,
		Zip:               v.Zip,
		Latitude:          v.Latitude,
		Longitude:         v.Longitude,
		Phone:             v.Phone,
		Website:           v.Website,
		Description:       v.Description,
		Lanes:             v.Lanes,
		PricePerGameCents: v.PricePerGameCents,
		ShoeRentalCents:   v.ShoeRentalCents,
		Amenities:         amenities,
		RatingAvg:         v.RatingAvg,
		RatingCount:       v.RatingCount,
		Verified:          v.Verified,
		CreatedAt:         v.CreatedAt.Time,
		UpdatedAt:         v.UpdatedAt.Time,
	}
}

func venuesToListResponse(venues []db.Venue) VenueListResponse {
	responses := make([]VenueResponse, len(venues))
	for i, v := range venues {
		responses[i] = venueToResponse(v)
	}
	return VenueListResponse{Venues: responses, Count: len(responses)}
}

// listVenuesHandler serves the directory from the venue cache. Filters and
// ordering are applied in memory; the database is only hit when the cached
// snapshot has expired.
func listVenuesHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	venues := lanefinder.Venues.GetAll(r.Context())

	query := r.URL.Query()
	if state := query.Get("state"); state != "" {
		venues = app.VenuesInState(venues, state)
	}
	if city := query.Get("city"); city != "" {
		venues = app.VenuesInCity(venues, query.Get("state"), city)
	}
	if amenity := query.Get("amenity"); amenity != "" {
		venues = app.VenuesWithAmenity(venues, amenity)
	}
	if q := query.Get("q"); q != "" {
		venues = app.SearchVenues(venues, q)
	}

	switch query.Get("sort") {
	case "rating":
		venues = app.SortByRating(venues)
	case "name":
		venues = app.SortByName(venues)
	}

	writeJsonResponse(w, http.StatusOK, venuesToListResponse(venues))
}

func getVenueHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	venue, err := lanefinder.DB.GetVenueBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err, "slug", slug)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve venue"})
		return
	}

	writeJsonResponse(w, http.StatusOK, venueToResponse(venue))
}

func validateVenueRequest(req UpsertVenueRequest) string {
	if req.Name == "" {
		return "name is required"
	}
	if req.City == "" {
		return "city is required"
	}
	if req.State == "" {
		return "state is required"
	}
	return ""
}

func createVenueHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	var req UpsertVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if msg := validateVenueRequest(req); msg != "" {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	slug := app.Slugify(req.Name)

	// Reject duplicates up front so the client gets a 409 instead of a
	// constraint violation.
	if _, err := lanefinder.DB.GetVenueBySlug(r.Context(), slug); err == nil {
		writeJsonResponse(w, http.StatusConflict, map[string]string{"error": "a venue with this name already exists"})
		return
	}

	venue, err := lanefinder.DB.InsertVenue(r.Context(), db.InsertVenueParams{
		ID:                pgtype.UUID{Bytes: uuid.Must(uuid.NewV7()), Valid: true},
		Name:              req.Name,
		Slug:              slug,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Zip:               req.Zip,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Phone:             req.Phone,
		Website:           req.Website,
		Description:       req.Description,
		Lanes:             req.Lanes,
		PricePerGameCents: req.PricePerGameCents,
		ShoeRentalCents:   req.ShoeRentalCents,
		Amenities:         req.Amenities,
		Verified:          req.Verified,
	})
	if err != nil {
		log(r.Context()).Error("Failed to insert venue", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create venue"})
		return
	}

	lanefinder.InvalidateVenues(app.VenueChange{
		Type:    app.ChangeVenueCreated,
		VenueID: app.UuidToString(venue.ID),
		Slug:    venue.Slug,
	})

	log(r.Context()).Info("Venue created",
		"venue_id", app.UuidToString(venue.ID),
		"name", venue.Name,
		"city", venue.City,
		"state", venue.State,
	)

	writeJsonResponse(w, http.StatusCreated, venueToResponse(venue))
}

func updateVenueHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	idStr := r.PathValue("id")
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "id must be a valid UUID"})
		return
	}
	venueID := pgtype.UUID{Bytes: parsed, Valid: true}

	var req UpsertVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if msg := validateVenueRequest(req); msg != "" {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	if _, err := lanefinder.DB.GetVenueByID(r.Context(), venueID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update venue"})
		return
	}

	venue, err := lanefinder.DB.UpdateVenue(r.Context(), db.UpdateVenueParams{
		ID:                venueID,
		Name:              req.Name,
		Slug:              app.Slugify(req.Name),
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Zip:               req.Zip,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Phone:             req.Phone,
		Website:           req.Website,
		Description:       req.Description,
		Lanes:             req.Lanes,
		PricePerGameCents: req.PricePerGameCents,
		ShoeRentalCents:   req.ShoeRentalCents,
		Amenities:         req.Amenities,
		Verified:          req.Verified,
	})
	if err != nil {
		log(r.Context()).Error("Failed to update venue", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update venue"})
		return
	}

	lanefinder.InvalidateVenues(app.VenueChange{
		Type:    app.ChangeVenueUpdated,
		VenueID: app.UuidToString(venue.ID),
		Slug:    venue.Slug,
	})

	writeJsonResponse(w, http.StatusOK, venueToResponse(venue))
}

func deleteVenueHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	idStr := r.PathValue("id")
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "id must be a valid UUID"})
		return
	}
	venueID := pgtype.UUID{Bytes: parsed, Valid: true}

	venue, err := lanefinder.DB.GetVenueByID(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "venue not found"})
			return
		}
		log(r.Context()).Error("Failed to get venue", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete venue"})
		return
	}

	if err := lanefinder.DB.DeleteVenue(r.Context(), venueID); err != nil {
		log(r.Context()).Error("Failed to delete venue", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete venue"})
		return
	}

	lanefinder.InvalidateVenues(app.VenueChange{
		Type:    app.ChangeVenueDeleted,
		VenueID: app.UuidToString(venue.ID),
		Slug:    venue.Slug,
	})

	w.WriteHeader(http.StatusNoContent)
}
