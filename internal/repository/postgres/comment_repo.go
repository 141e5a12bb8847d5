package postgres

import (
	"context"

	"github.com/pawfinder/adoption-backend/internal/domain"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByBreed returns the breed's comments newest first. The ordering is
// part of the API contract, not a presentation choice.
func (r *commentRepository) ListByBreed(ctx context.Context, breedID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Where("breed_id = ?", breedID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
