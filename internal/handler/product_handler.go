package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avtanos/vetcard/internal/dto"
	"github.com/avtanos/vetcard/internal/response"
	"github.com/avtanos/vetcard/internal/service"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productService service.ProductService
	logger         *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, logger: logger}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, dto.ToProductResponse(product))
}

// List handles GET /products with ?category= and ?partner= filters.
// Only available products are returned.
func (h *ProductHandler) List(c *gin.Context) {
	filters := dto.ProductFilters{Category: c.Query("category")}
	if partnerStr := c.Query("partner"); partnerStr != "" {
		partnerID, err := uuid.Parse(partnerStr)
		if err != nil {
			// An unparseable partner filter matches nothing
			response.SendSuccess(c, http.StatusOK, []dto.ProductResponse{})
			return
		}
		filters.Partner = &partnerID
	}

	products, err := h.productService.List(c.Request.Context(), filters)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, dto.ToProductResponse(&products[i]))
	}
	response.SendSuccess(c, http.StatusOK, responses)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), productID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToProductResponse(product))
}

// Update handles PUT and PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.ToProductResponse(product))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), productID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.CategoriesResponse{Categories: categories})
}
