package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/auth"
	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/repository"
	"github.com/avtanos/vetcard/internal/response"
)

// AuthService defines the interface for account and token operations
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, string, error) {
	if req.Password != req.Password2 {
		return nil, "", "", response.NewFieldError("password", "Password fields didn't match.")
	}
	if reason, ok := auth.ValidatePassword(req.Password); !ok {
		return nil, "", "", response.NewFieldError("password", reason)
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", response.NewFieldError("username", "A user with that username already exists.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", response.NewAppError(response.ErrCodeUnauthorized, "Invalid credentials", "")
		}
		return nil, "", "", err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", response.NewAppError(response.ErrCodeUnauthorized, "Invalid credentials", "")
	}

	access, refresh, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Validate(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return "", response.NewAppError(response.ErrCodeUnauthorized, "Invalid refresh token", "")
	}

	// The account may have been removed since the token was issued
	if _, err := s.userRepo.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewAppError(response.ErrCodeUnauthorized, "Invalid refresh token", "")
		}
		return "", err
	}

	return s.tokens.GenerateAccess(claims.UserID)
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return user, nil
}
