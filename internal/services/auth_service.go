package services

import (
	"context"
	"errors"

	"canteen-service/internal/auth"
	"canteen-service/internal/domain"
	"canteen-service/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenMaker
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenMaker) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*domain.User, *TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       domain.RoleCustomer,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return user, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, refresh, err := s.tokens.GenerateTokens(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
