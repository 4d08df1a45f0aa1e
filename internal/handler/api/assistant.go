package api

import (
	"errors"
	"net/http"

	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantCommands commands.AssistantCommands
}

func NewAssistantHandler(assistantCommands commands.AssistantCommands) *AssistantHandler {
	return &AssistantHandler{assistantCommands: assistantCommands}
}

// @Summary Suggest a recipe
// @Description Ask the assistant for a recipe built from the cart contents
// @Tags assistant
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AssistantResponse
// @Failure 502 {object} httperr.Response
// @Router /assistant/recipe [post]
func (h *AssistantHandler) SuggestRecipe(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	text, err := h.assistantCommands.SuggestRecipe(c.Request.Context(), ownerID)
	if err != nil {
		h.respondAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AssistantResponse{Text: text})
}

// @Summary Describe a product
// @Description Ask the assistant for a short product description
// @Tags assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DescribeProductRequest true "Product"
// @Success 200 {object} resdto.AssistantResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /assistant/describe [post]
func (h *AssistantHandler) DescribeProduct(c *gin.Context) {
	var req reqdto.DescribeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	text, err := h.assistantCommands.DescribeProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		h.respondAssistantError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AssistantResponse{Text: text})
}

func (h *AssistantHandler) respondAssistantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAssistantUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Assistant is unavailable", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
