package postgres

import (
	"context"

	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/repository"
	"gorm.io/gorm"
)

type centerRepository struct {
	db *gorm.DB
}

func NewCenterRepository(db *gorm.DB) *centerRepository {
	return &centerRepository{db: db}
}

func (r *centerRepository) Create(ctx context.Context, center *domain.AdoptionCenter) error {
	return r.db.WithContext(ctx).Create(center).Error
}

// List applies the filter fields that are set; no ordering clause, results
// come back in store order.
func (r *centerRepository) List(ctx context.Context, filter repository.CenterFilter) ([]*domain.AdoptionCenter, error) {
	query := r.db.WithContext(ctx)
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}

	var centers []*domain.AdoptionCenter
	if err := query.Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}
