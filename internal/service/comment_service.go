package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

type CreateCommentInput struct {
	BreedID string
	Content string
}

// Create posts a comment as author. UserName is copied from the author here,
// at posting time; it is never re-resolved on read.
func (s *CommentService) Create(ctx context.Context, author *domain.User, input CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:       uuid.New(),
		BreedID:  input.BreedID,
		Content:  input.Content,
		UserID:   author.ID,
		UserName: author.FullName(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByBreed(ctx context.Context, breedID string) ([]*domain.Comment, error) {
	return s.commentRepo.ListByBreed(ctx, breedID)
}
