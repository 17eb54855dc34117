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
		router.Handle("POST /suggestions", routeHandler(lanefinder, createSuggestionHandler))
		router.Handle("GET /suggestions", routeHandler(lanefinder, listSuggestionsHandler))
		router.Handle("PUT /suggestions/{id}", routeHandler(lanefinder, updateSuggestionHandler))
	})
}

var suggestionStatuses = map[string]bool{
	"open":     true,
	"accepted": true,
	"rejected": true,
}

type CreateSuggestionRequest struct {
	VenueID *string `json:"venue_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Message string  `json:"message"`
}

type UpdateSuggestionRequest struct {
	Status string `json:"status"`
}

type SuggestionResponse struct {
	ID        string    `json:"id"`
	VenueID   *string   `json:"venue_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func suggestionToResponse(s db.Suggestion) SuggestionResponse {
	resp := SuggestionResponse{
		ID:        app.UuidToString(s.ID),
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Time,
	}
	if s.VenueID.Valid {
		venueID := app.UuidToString(s.VenueID)
		resp.VenueID = &venueID
	}
	return resp
}

func createSuggestionHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	var req CreateSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if req.Message == "" {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	var venueID pgtype.UUID
	if req.VenueID != nil {
		parsed, err := uuid.Parse(*req.VenueID)
		if err != nil {
			writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "venue_id must be a valid UUID"})
			return
		}
		venueID = pgtype.UUID{Bytes: parsed, Valid: true}
	}

	suggestion, err := lanefinder.DB.InsertSuggestion(r.Context(), db.InsertSuggestionParams{
		ID:      pgtype.UUID{Bytes: uuid.Must(uuid.NewV7()), Valid: true},
		VenueID: venueID,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		log(r.Context()).Error("Failed to insert suggestion", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create suggestion"})
		return
	}

	log(r.Context()).Info("Suggestion submitted", "suggestion_id", app.UuidToString(suggestion.ID))

	writeJsonResponse(w, http.StatusCreated, suggestionToResponse(suggestion))
}

func listSuggestionsHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		status = "open"
	}
	if !suggestionStatuses[status] {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "status must be one of: open, accepted, rejected"})
		return
	}

	suggestions, err := lanefinder.DB.ListSuggestions(r.Context(), status)
	if err != nil {
		log(r.Context()).Error("Failed to list suggestions", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list suggestions"})
		return
	}

	responses := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = suggestionToResponse(s)
	}
	writeJsonResponse(w, http.StatusOK, responses)
}

func updateSuggestionHandler(lanefinder *app.Application, w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(lanefinder, w, r) {
		return
	}

	idStr := r.PathValue("id")
	parsed, err := uuid.Parse(idStr)
	if err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "id must be a valid UUID"})
		return
	}

	var req UpdateSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if !suggestionStatuses[req.Status] {
		writeJsonResponse(w, http.StatusBadRequest, map[string]string{"error": "status must be one of: open, accepted, rejected"})
		return
	}

	suggestion, err := lanefinder.DB.UpdateSuggestionStatus(r.Context(), db.UpdateSuggestionStatusParams{
		ID:     pgtype.UUID{Bytes: parsed, Valid: true},
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJsonResponse(w, http.StatusNotFound, map[string]string{"error": "suggestion not found"})
			return
		}
		log(r.Context()).Error("Failed to update suggestion", "error", err)
		writeJsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update suggestion"})
		return
	}

	writeJsonResponse(w, http.StatusOK, suggestionToResponse(suggestion))
}
