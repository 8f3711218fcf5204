// Package account serves user profiles and the saved specimen designs
// attached to them.
package account

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"Dogbone/internal/auth"
	"Dogbone/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type updateProfileRequest struct {
	Login       string `json:"login"`
	Description string `json:"description"`
}

type saveDesignRequest struct {
	Name   string          `json:"name"`
	Params json.RawMessage `json:"params"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.UpdateProfile(r.Context(), userID, req.Login, req.Description); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SaveDesign(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req saveDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" || len(req.Params) == 0 {
		http.Error(w, "Name and params required", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.CreateDesign(r.Context(), userID, req.Name, req.Params)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	designs, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(designs)
}

func (h *Handler) GetDesign(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	idStr := mux.Vars(r)["id"]
	designID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid design id", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.GetDesign(r.Context(), userID, designID)
	if err != nil {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}
