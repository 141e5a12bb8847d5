package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawfinder/adoption-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

type CenterRepository interface {
	Create(ctx context.Context, center *domain.AdoptionCenter) error
	List(ctx context.Context, filter CenterFilter) ([]*domain.AdoptionCenter, error)
}

// CenterFilter narrows the center listing; empty fields are ignored.
type CenterFilter struct {
	State string
	City  string
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByBreed(ctx context.Context, breedID string) ([]*domain.Comment, error)
}

type Repositories struct {
	User    UserRepository
	Center  CenterRepository
	Comment CommentRepository
}
