package services

import (
	"context"

	"github.com/akinalp/dukkan/models"
	"github.com/akinalp/dukkan/repository"
)

// UserService, kullanıcı okuma işlemleri (admin paneli + profil).
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Hash hiçbir response'ta görünmesin (json:"-" zaten koruyor, yine de sıfırla)
	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
