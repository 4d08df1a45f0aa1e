package api

import (
	"net/http"

	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ComparisonHandler struct {
	comparisonCommands commands.ComparisonCommands
	storeQueries       queries.ClientStoreQueries
}

func NewComparisonHandler(comparisonCommands commands.ComparisonCommands, storeQueries queries.ClientStoreQueries) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonCommands: comparisonCommands,
		storeQueries:       storeQueries,
	}
}

// @Summary Toggle comparison product
// @Description Add or remove a product from the comparison set; adding past the 4-item cap is rejected
// @Tags comparison
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Param request body reqdto.ToggleRequest true "Product to toggle"
// @Success 200 {object} resdto.ComparisonToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /comparison/toggle [post]
func (h *ComparisonHandler) Toggle(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req reqdto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.comparisonCommands.Toggle(c.Request.Context(), ownerID, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := resdto.ComparisonToggleResponse{Changed: result.Changed}
	_ = copier.Copy(&resp.Items, result.View.Items)
	if resp.Items == nil {
		resp.Items = []resdto.ComparisonItemResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get comparison set
// @Description Get the shopper's comparison set
// @Tags comparison
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Success 200 {object} resdto.ComparisonResponse
// @Router /comparison [get]
func (h *ComparisonHandler) Get(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	view, err := h.storeQueries.GetComparison(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromComparisonView(view))
}

// @Summary Clear comparison set
// @Description Remove every product from the comparison set
// @Tags comparison
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Success 204
// @Router /comparison [delete]
func (h *ComparisonHandler) Clear(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	if err := h.comparisonCommands.Clear(c.Request.Context(), ownerID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
