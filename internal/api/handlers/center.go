package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pawfinder/adoption-backend/internal/api/middleware"
	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/repository"
	"github.com/pawfinder/adoption-backend/internal/service"
)

type CenterHandler struct {
	centerService *service.CenterService
}

func NewCenterHandler(centerService *service.CenterService) *CenterHandler {
	return &CenterHandler{centerService: centerService}
}

// CreateCenterRequest deliberately has no addedBy field; ownership comes
// from the authenticated caller and nothing else.
type CreateCenterRequest struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Phone   string   `json:"phone"`
	Breeds  []string `json:"breeds"`
}

type CenterResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Phone       string    `json:"phone"`
	Breeds      []string  `json:"breeds"`
	AddedBy     string    `json:"addedBy"`
	AddedByName *string   `json:"addedByName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newCenterResponse(center *domain.AdoptionCenter, addedByName *string) CenterResponse {
	return CenterResponse{
		ID:          center.ID.String(),
		Name:        center.Name,
		Address:     center.Address,
		City:        center.City,
		State:       center.State,
		Phone:       center.Phone,
		Breeds:      center.Breeds,
		AddedBy:     center.AddedBy.String(),
		AddedByName: addedByName,
		CreatedAt:   center.CreatedAt,
	}
}

func (h *CenterHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.CenterFilter{
		State: r.URL.Query().Get("state"),
		City:  r.URL.Query().Get("city"),
	}

	listings, err := h.centerService.List(r.Context(), filter)
	if err != nil {
		log.Printf("ERROR [center.List]: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]CenterResponse, len(listings))
	for i, l := range listings {
		resp[i] = newCenterResponse(l.Center, l.AddedByName)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *CenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	var req CreateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Address == "" || req.City == "" || req.State == "" || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "Name, address, city, state and phone are required")
		return
	}

	center, err := h.centerService.Create(r.Context(), user, service.CreateCenterInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Phone:   req.Phone,
		Breeds:  req.Breeds,
	})
	if err != nil {
		log.Printf("ERROR [center.Create]: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := user.FullName()
	respondJSON(w, http.StatusCreated, newCenterResponse(center, &name))
}
