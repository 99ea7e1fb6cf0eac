package services

import (
	"context"
	"errors"

	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("role must be customer or admin")
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll()
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser is the admin path; accounts made here have no password and
// log in through the external identity provider.
func (s *UserService) CreateUser(ctx context.Context, username, email string, roleID uint64) (*domain.User, error) {
	if roleID != domain.RoleCustomer && roleID != domain.RoleAdmin {
		return nil, ErrInvalidRole
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		RoleID:   roleID,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Uint64("role_id", roleID).Msg("user created")
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id, username, email string, roleID uint64) (*domain.User, error) {
	if roleID != domain.RoleCustomer && roleID != domain.RoleAdmin {
		return nil, ErrInvalidRole
	}

	user := &domain.User{ID: id, Username: username, Email: email, RoleID: roleID}
	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
