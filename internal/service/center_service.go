package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/repository"
)

type CenterService struct {
	centerRepo repository.CenterRepository
	userRepo   repository.UserRepository
}

func NewCenterService(centerRepo repository.CenterRepository, userRepo repository.UserRepository) *CenterService {
	return &CenterService{
		centerRepo: centerRepo,
		userRepo:   userRepo,
	}
}

type CreateCenterInput struct {
	Name    string
	Address string
	City    string
	State   string
	Phone   string
	Breeds  []string
}

// CenterListing pairs a center with its creator's display name, resolved at
// read time. AddedByName is nil when the creator record no longer exists.
type CenterListing struct {
	Center      *domain.AdoptionCenter
	AddedByName *string
}

// Create persists a center on behalf of creator. The creator reference is
// always the authenticated user; client-supplied ownership is never trusted.
func (s *CenterService) Create(ctx context.Context, creator *domain.User, input CreateCenterInput) (*domain.AdoptionCenter, error) {
	center := &domain.AdoptionCenter{
		ID:      uuid.New(),
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Phone:   input.Phone,
		Breeds:  input.Breeds,
		AddedBy: creator.ID,
	}

	if err := s.centerRepo.Create(ctx, center); err != nil {
		return nil, err
	}
	return center, nil
}

func (s *CenterService) List(ctx context.Context, filter repository.CenterFilter) ([]*CenterListing, error) {
	centers, err := s.centerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Resolve creator names in one query.
	idSet := make(map[uuid.UUID]struct{}, len(centers))
	ids := make([]uuid.UUID, 0, len(centers))
	for _, c := range centers {
		if _, seen := idSet[c.AddedBy]; !seen {
			idSet[c.AddedBy] = struct{}{}
			ids = append(ids, c.AddedBy)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}

	listings := make([]*CenterListing, len(centers))
	for i, c := range centers {
		listing := &CenterListing{Center: c}
		if name, ok := names[c.AddedBy]; ok {
			listing.AddedByName = &name
		}
		listings[i] = listing
	}
	return listings, nil
}
