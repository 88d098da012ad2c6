package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// AdminService manages staff accounts and the admin keys the HTTP middleware
// authenticates with.
type AdminService struct {
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(userRepo ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterInput represents input for registering a staff account.
type RegisterInput struct {
	Name     string
	Email    string
	PhotoURL string
	Provider string
}

// Register upserts a staff account by email. A returning user gets their
// existing record and key back; a new one is created with a fresh admin key.
func (s *AdminService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("email: %w", domain.ErrEmptyName)
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	// 32 bytes = 64 hex characters
	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		return nil, fmt.Errorf("failed to generate admin key: %w", err)
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Provider: input.Provider,
		Key:      hex.EncodeToString(keyBytes),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Str("userId", user.ID).
		Str("email", user.Email).
		Msg("Registered staff account")

	return user, nil
}

// GetByKey resolves an admin key to its staff account.
func (s *AdminService) GetByKey(ctx context.Context, key string) (*domain.User, error) {
	user, err := s.userRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	return user, nil
}
