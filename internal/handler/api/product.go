package api

import (
	"errors"
	"net/http"
	"strconv"

	"gocery/internal/domain/product"
	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
	reviewQueries   queries.ReviewQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries, reviewQueries queries.ReviewQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
		reviewQueries:   reviewQueries,
	}
}

// @Summary List products
// @Description List catalog products, optionally filtered by category
// @Tags products
// @Produce json
// @Param categoryId query string false "Category ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ProductListResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category ID format", nil)
			return
		}
		categoryID = &id
	}

	limit := parseInt32Query(c, "limit", 50)
	offset := parseInt32Query(c, "offset", 0)

	items, err := h.productQueries.List(c.Request.Context(), categoryID, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductListItems(items))
}

// @Summary Get product
// @Description Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	view, err := h.productQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Create product
// @Description Create a catalog product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.productCommands.Create(c.Request.Context(), commands.CreateProductInput{
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
		Images:          req.Images,
		CategoryID:      req.CategoryID,
		Kind:            req.Kind,
	})
	if err != nil {
		h.respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update product
// @Description Update a catalog product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Product"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.productCommands.Update(c.Request.Context(), commands.UpdateProductInput{
		ProductID:       id,
		Name:            req.Name,
		PriceCents:      req.PriceCents,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
		Images:          req.Images,
		CategoryID:      req.CategoryID,
		Kind:            req.Kind,
	})
	if err != nil {
		h.respondProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List product reviews
// @Description List reviews for a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /products/{id}/reviews [get]
func (h *ProductHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	limit := parseInt32Query(c, "limit", 50)
	offset := parseInt32Query(c, "offset", 0)

	items, err := h.reviewQueries.ListByProduct(c.Request.Context(), id, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(items))
}

func (h *ProductHandler) respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrEmptyName),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, product.ErrInvalidDiscount),
		errors.Is(err, product.ErrNegativeStock),
		errors.Is(err, product.ErrInvalidKind):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Category does not exist", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseInt32Query(c *gin.Context, name string, fallback int32) int32 {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}
