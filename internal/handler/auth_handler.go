package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/metrics"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
)

// AuthHandler handles registration, login and token endpoints
type AuthHandler struct {
	authService service.AuthService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, m *metrics.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: m, logger: logger}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, access, refresh, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.metrics.IncrementUserRegistered()
	h.logger.Info("user registered", zap.String("username", user.Username))

	response.SendSuccess(c, http.StatusCreated, dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, access, refresh, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.AuthResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}

// Token handles POST /token, issuing a token pair from credentials
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	_, access, refresh, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.TokenPairResponse{
		Access:  access,
		Refresh: refresh,
	})
}

// TokenRefresh handles POST /token/refresh
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	access, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.AccessTokenResponse{Access: access})
}
