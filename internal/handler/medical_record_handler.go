package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
)

// MedicalRecordHandler handles medical record endpoints
type MedicalRecordHandler struct {
	recordService service.MedicalRecordService
	logger        *zap.Logger
}

// NewMedicalRecordHandler creates a new medical record handler
func NewMedicalRecordHandler(recordService service.MedicalRecordService, logger *zap.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordService: recordService, logger: logger}
}

// Create handles POST /medical-records
func (h *MedicalRecordHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.ToMedicalRecordResponse(record))
}

// List handles GET /medical-records
func (h *MedicalRecordHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.recordService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, dto.ToMedicalRecordResponse(&records[i]))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /medical-records/:id
func (h *MedicalRecordHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.recordService.Get(c.Request.Context(), userID, recordID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToMedicalRecordResponse(record))
}

// Update handles PUT and PATCH /medical-records/:id
func (h *MedicalRecordHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), userID, recordID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToMedicalRecordResponse(record))
}

// Delete handles DELETE /medical-records/:id
func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), userID, recordID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
