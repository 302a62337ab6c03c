// Package api exposes HTTP handlers for the signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/signup/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. Path segments are URL-decoded
// by the mux, so activity names may contain spaces.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", rootRedirect)
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", h.signUp)
	mux.HandleFunc("POST /activities/{activity}/unregister", h.unregister)
	mux.HandleFunc("GET /healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// rootRedirect sends browsers to the static front-end.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	if _, err := h.service.SignUp(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "already_signed_up", "Student is already signed up")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	if _, err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, "not_registered", "Student is not registered for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, name),
	})
}

// ActivityView exposes one activity in the directory listing.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}
