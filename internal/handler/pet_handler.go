package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/metrics"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
	"github.com/avtanos/vetcard/internal/storage"
)

// PetHandler handles pet CRUD and image upload endpoints
type PetHandler struct {
	petService service.PetService
	store      storage.Storage
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService service.PetService, store storage.Storage, m *metrics.Metrics, logger *zap.Logger) *PetHandler {
	return &PetHandler{petService: petService, store: store, metrics: m, logger: logger}
}

// Create handles POST /pets
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	pet, err := h.petService.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.metrics.IncrementPetCreated()

	response.SendSuccess(c, http.StatusCreated, dto.ToPetResponse(pet, urlResolver(c, h.store)))
}

// List handles GET /pets
func (h *PetHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	pets, err := h.petService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	resolve := urlResolver(c, h.store)
	responses := make([]dto.PetResponse, 0, len(pets))
	for i := range pets {
		responses = append(responses, dto.ToPetResponse(&pets[i], resolve))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /pets/:id
func (h *PetHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	petID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pet, err := h.petService.Get(c.Request.Context(), userID, petID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToPetResponse(pet, urlResolver(c, h.store)))
}

// Update handles PUT and PATCH /pets/:id
func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	petID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	pet, err := h.petService.Update(c.Request.Context(), userID, petID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToPetResponse(pet, urlResolver(c, h.store)))
}

// Delete handles DELETE /pets/:id
func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	petID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.petService.Delete(c.Request.Context(), userID, petID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /pets/:id/upload_image
func (h *PetHandler) UploadImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	petID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Image file is required")
		return
	}
	defer file.Close()

	pet, err := h.petService.UploadImage(
		c.Request.Context(),
		userID,
		petID,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	resolve := urlResolver(c, h.store)
	response.SendSuccess(c, http.StatusOK, dto.UploadImageResponse{
		ImageURL: resolve(pet.ImageKey),
		Message:  "Image uploaded successfully",
	})
}
