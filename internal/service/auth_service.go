package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/config"
	"github.com/goprotex/Disaster-Response/internal/ids"
	"github.com/goprotex/Disaster-Response/internal/models"
	"github.com/goprotex/Disaster-Response/internal/repository"
	"github.com/goprotex/Disaster-Response/internal/security"
)

type AuthService struct {
	users *repository.UserRepository
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, cfg: cfg, log: log}
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Phone       string
	Role        string
}

type AuthResult struct {
	AccessToken string
	User        models.User
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("email and password required")
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	role := models.UserRole(input.Role)
	switch role {
	case models.UserRoleVictim, models.UserRoleVolunteer:
	case "":
		role = models.UserRoleVictim
	default:
		// Elevated roles are granted out of band, never self-assigned.
		return AuthResult{}, fmt.Errorf("invalid role %q", input.Role)
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		DisplayName:  input.DisplayName,
		Phone:        optional(strings.TrimSpace(input.Phone)),
		Role:         role,
		Status:       models.UserStatusActive,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	return s.issueToken(user)
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	if user.Status != models.UserStatusActive {
		return AuthResult{}, ErrUserSuspended
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user models.User) (AuthResult, error) {
	accessToken, err := security.GenerateAccessToken(
		s.cfg.Security.JWTSecret,
		user.ID,
		string(user.Role),
		s.cfg.Security.JWTTTL,
	)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
