package service

import (
	"github.com/pawfinder/adoption-backend/internal/config"
	"github.com/pawfinder/adoption-backend/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Center  *CenterService
	Comment *CommentService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, cfg),
		Center:  NewCenterService(repos.Center, repos.User),
		Comment: NewCommentService(repos.Comment),
	}
}
