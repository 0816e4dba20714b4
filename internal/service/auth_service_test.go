package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avtanos/vetcard/internal/auth"
	"github.com/avtanos/vetcard/internal/domain"
	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
)

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates user and returns token pair", func(t *testing.T) {
		var created *domain.User
		userRepo := &MockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return false, nil
			},
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				user.ID = uuid.New()
				created = user
				return nil
			},
		}

		svc := NewAuthService(userRepo, testTokenManager())
		user, access, refresh, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "correct horse",
			Password2: "correct horse",
			FirstName: "Alice",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		require.NotNil(t, created)
		assert.NotEqual(t, "correct horse", created.PasswordHash)
	})

	t.Run("password mismatch maps to password field error", func(t *testing.T) {
		svc := NewAuthService(&MockUserRepository{}, testTokenManager())
		_, _, _, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username:  "alice",
			Password:  "correct horse",
			Password2: "wrong horse",
		})

		require.Error(t, err)
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Fields, "password")
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := NewAuthService(&MockUserRepository{}, testTokenManager())
		_, _, _, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username:  "alice",
			Password:  "short",
			Password2: "short",
		})

		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "password")
	})

	t.Run("rejects entirely numeric password", func(t *testing.T) {
		svc := NewAuthService(&MockUserRepository{}, testTokenManager())
		_, _, _, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username:  "alice",
			Password:  "12345678901",
			Password2: "12345678901",
		})

		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "password")
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		userRepo := &MockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return true, nil
			},
		}

		svc := NewAuthService(userRepo, testTokenManager())
		_, _, _, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username:  "alice",
			Password:  "correct horse",
			Password2: "correct horse",
		})

		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "username")
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	existing := &domain.User{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		Username:     "alice",
		PasswordHash: hash,
	}

	userRepo := &MockUserRepository{
		FindByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			if username == "alice" {
				return existing, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewAuthService(userRepo, testTokenManager())

	t.Run("valid credentials return token pair", func(t *testing.T) {
		user, access, refresh, err := svc.Login(context.Background(), dto.LoginRequest{
			Username: "alice",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), dto.LoginRequest{
			Username: "alice",
			Password: "wrong horse",
		})
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("unknown user is unauthorized, not not-found", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), dto.LoginRequest{
			Username: "mallory",
			Password: "whatever1",
		})
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeUnauthorized, appErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id == userID {
				return &domain.User{BaseModel: domain.BaseModel{ID: userID}}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	tokens := testTokenManager()
	svc := NewAuthService(userRepo, tokens)

	t.Run("refresh token yields new access token", func(t *testing.T) {
		_, refresh, err := tokens.GeneratePair(userID)
		require.NoError(t, err)

		access, err := svc.Refresh(context.Background(), refresh)
		require.NoError(t, err)

		claims, err := tokens.Validate(access, auth.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("access token is rejected at the refresh endpoint", func(t *testing.T) {
		access, _, err := tokens.GeneratePair(userID)
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), access)
		appErr, ok := err.(*response.AppError)
		require.True(t, ok)
		assert.Equal(t, response.ErrCodeUnauthorized, appErr.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), "not.a.token")
		assert.Error(t, err)
	})
}
