package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pawfinder/adoption-backend/internal/api/middleware"
	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest carries no author fields; userId and userName are
// always derived from the authenticated caller.
type CreateCommentRequest struct {
	BreedID string `json:"breedId"`
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	BreedID   string    `json:"breedId"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		BreedID:   comment.BreedID,
		Content:   comment.Content,
		UserID:    comment.UserID.String(),
		UserName:  comment.UserName,
		CreatedAt: comment.CreatedAt,
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	breedID := r.URL.Query().Get("breedId")
	if breedID == "" {
		respondError(w, http.StatusBadRequest, "breedId query parameter is required")
		return
	}

	comments, err := h.commentService.ListByBreed(r.Context(), breedID)
	if err != nil {
		log.Printf("ERROR [comment.List] breedId=%s: %v", breedID, err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = newCommentResponse(c)
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.BreedID == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "breedId and content are required")
		return
	}

	comment, err := h.commentService.Create(r.Context(), user, service.CreateCommentInput{
		BreedID: req.BreedID,
		Content: req.Content,
	})
	if err != nil {
		log.Printf("ERROR [comment.Create]: %v", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, newCommentResponse(comment))
}
