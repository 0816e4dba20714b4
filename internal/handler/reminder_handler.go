package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
)

// ReminderHandler handles reminder endpoints
type ReminderHandler struct {
	reminderService service.ReminderService
	logger          *zap.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService service.ReminderService, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService, logger: logger}
}

// Create handles POST /reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	reminder, err := h.reminderService.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.ToReminderResponse(reminder))
}

// List handles GET /reminders
func (h *ReminderHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reminders, err := h.reminderService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	responses := make([]dto.ReminderResponse, 0, len(reminders))
	for i := range reminders {
		responses = append(responses, dto.ToReminderResponse(&reminders[i]))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /reminders/:id
func (h *ReminderHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reminder, err := h.reminderService.Get(c.Request.Context(), userID, reminderID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToReminderResponse(reminder))
}

// Update handles PUT and PATCH /reminders/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	reminder, err := h.reminderService.Update(c.Request.Context(), userID, reminderID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToReminderResponse(reminder))
}

// Delete handles DELETE /reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), userID, reminderID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
