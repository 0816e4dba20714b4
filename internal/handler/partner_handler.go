package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
)

// PartnerHandler handles partner directory endpoints
type PartnerHandler struct {
	partnerService service.PartnerService
	logger         *zap.Logger
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerService service.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService, logger: logger}
}

// Create handles POST /partners
func (h *PartnerHandler) Create(c *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.ToPartnerResponse(partner))
}

// List handles GET /partners with an optional ?category= filter on the
// partner type
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.partnerService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	responses := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		responses = append(responses, dto.ToPartnerResponse(&partners[i]))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /partners/:id
func (h *PartnerHandler) Get(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	partner, err := h.partnerService.Get(c.Request.Context(), partnerID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToPartnerResponse(partner))
}

// Update handles PUT and PATCH /partners/:id
func (h *PartnerHandler) Update(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	partner, err := h.partnerService.Update(c.Request.Context(), partnerID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToPartnerResponse(partner))
}

// Delete handles DELETE /partners/:id
func (h *PartnerHandler) Delete(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.partnerService.Delete(c.Request.Context(), partnerID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
