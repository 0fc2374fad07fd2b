package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shoplite/shoplite-go/internal/crypto"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("User already exists")
	ErrUserNotFound       = errors.New("User not found")
)

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns a signed token for it.
// The token is only issued after the user row is persisted.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	if err := model.Validate(req); err != nil {
		return "", err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Login authenticates a user by email and password and returns a token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if err := model.Validate(req); err != nil {
		return "", err
	}

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Profile retrieves the authenticated user's account, without the password hash.
func (s *AuthService) Profile(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// normalizeEmail lowercases an email so uniqueness and lookup are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
