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

// DocumentHandler handles pet document endpoints
type DocumentHandler struct {
	docService service.DocumentService
	store      storage.Storage
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService service.DocumentService, store storage.Storage, m *metrics.Metrics, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{docService: docService, store: store, metrics: m, logger: logger}
}

// Create handles POST /documents
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	doc, err := h.docService.Create(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.ToDocumentResponse(doc, urlResolver(c, h.store)))
}

// List handles GET /documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	docs, err := h.docService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	resolve := urlResolver(c, h.store)
	responses := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, dto.ToDocumentResponse(&docs[i], resolve))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.docService.Get(c.Request.Context(), userID, docID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToDocumentResponse(doc, urlResolver(c, h.store)))
}

// Update handles PUT and PATCH /documents/:id
func (h *DocumentHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	doc, err := h.docService.Update(c.Request.Context(), userID, docID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToDocumentResponse(doc, urlResolver(c, h.store)))
}

// Delete handles DELETE /documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.docService.Delete(c.Request.Context(), userID, docID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadFile handles POST /documents/:id/upload_file
func (h *DocumentHandler) UploadFile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	docID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File is required")
		return
	}
	defer file.Close()

	doc, err := h.docService.UploadFile(
		c.Request.Context(),
		userID,
		docID,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.metrics.IncrementDocumentUploaded()

	resolve := urlResolver(c, h.store)
	response.SendSuccess(c, http.StatusOK, dto.UploadFileResponse{
		FileURL: resolve(doc.FileKey),
		Message: "File uploaded successfully",
	})
}
