package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"flysolo/internal/auth"
	"flysolo/internal/domain"
	"flysolo/internal/repository"
)

// AuthService implements the identity provider: registration, login and
// token issuance. The rest of the system only ever sees the resulting
// actor identity.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// RegisterRequest contains the parameters for creating an account.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      domain.Role     // USER or PILOT; empty = USER
	Faction   *domain.Faction // nil = neutral
}

// Register creates an account and returns it with a fresh token. Accounts
// self-select USER or PILOT; ADMIN is never grantable through registration.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	role := req.Role
	switch role {
	case "":
		role = domain.RoleUser
	case domain.RoleUser, domain.RolePilot:
	default:
		return nil, "", ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		Faction:      req.Faction,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Missing users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the user behind an actor identity.
func (s *AuthService) GetProfile(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, actor.ID)
}
