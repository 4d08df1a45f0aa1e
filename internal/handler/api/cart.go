package api

import (
	"errors"
	"net/http"

	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/handler/middleware"
	"gocery/internal/infra"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Auth middleware is expected to populate the request context before these
// handlers run; reaching one of these sentinels means a route was wired
// without it.
var (
	errNoOwnerIdentity = errors.New("request carries neither a login nor a session id")
	errNoAuthContext   = errors.New("authenticated route reached without a user in context")
)

type CartHandler struct {
	cartCommands commands.CartCommands
	storeQueries queries.ClientStoreQueries
}

func NewCartHandler(cartCommands commands.CartCommands, storeQueries queries.ClientStoreQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		storeQueries: storeQueries,
	}
}

// @Summary Get cart
// @Description Get the shopper's cart with derived totals
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	view, err := h.storeQueries.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Add a product to the cart at quantity 1; adding an item already present leaves the cart unchanged
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Param request body reqdto.AddCartItemRequest true "Product to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cartCommands.AddItem(c.Request.Context(), ownerID, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cartCommands.UpdateQuantity(c.Request.Context(), ownerID, productID, req.Quantity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart item
// @Description Remove a line from the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	view, err := h.cartCommands.RemoveItem(c.Request.Context(), ownerID, productID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.Clear(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// requireOwner aborts with 400 when the request has neither an
// authenticated user nor a session ID.
func requireOwner(c *gin.Context) (string, bool) {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoOwnerIdentity, "X-Session-ID header or login required", nil)
		return "", false
	}
	return ownerID, true
}
