package designs

import (
	auth "Clarifier/internal/auth"
	basin "Clarifier/internal/calc/basin"
	repo "Clarifier/internal/repo"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// Handler persists named design input sets per user. Only the inputs are
// stored; results are recomputed on load so a saved design always reflects
// the current formulas.
type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name   string        `json:"name"`
	Design basin.Request `json:"design"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "Design name required", http.StatusBadRequest)
		return
	}
	// reject unsizable payloads up front
	if _, err := basin.Design(req.Design); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := json.Marshal(req.Design)
	if err != nil {
		http.Error(w, "Invalid design payload", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), userID, req.Name, payload)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListDesigns(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Get returns the saved inputs together with freshly computed results.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid design id", http.StatusBadRequest)
		return
	}

	design, err := h.Repo.GetDesign(r.Context(), userID, id)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Design not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	var req basin.Request
	if err := json.Unmarshal(design.Payload, &req); err != nil {
		http.Error(w, "Corrupt design payload", http.StatusInternalServerError)
		return
	}
	resp, err := basin.Design(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		repo.Design
		Results basin.Response `json:"results"`
	}{design, resp})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid design id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteDesign(r.Context(), userID, id); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
