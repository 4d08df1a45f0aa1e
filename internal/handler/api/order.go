package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gocery/internal/domain/coupon"
	"gocery/internal/domain/order"
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

var errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Place order
// @Description Turn the cart into an order; stock for every line is validated and decremented atomically
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	orderID, err := h.orderCommands.PlaceOrder(c.Request.Context(), commands.PlaceOrderInput{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
		CouponCode:      req.GetCouponCode(),
		IdempotencyKey:  idempotencyKey,
		RequestHash:     hashPlaceOrderRequest(userID, req),
	})
	if err != nil {
		h.respondPlaceOrderError(c, err)
		return
	}

	view, err := h.orderQueries.GetByIDSystem(c.Request.Context(), orderID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Get order
// @Description Get an order by ID; customers can only read their own
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, role.String(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Order belongs to another user", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List the authenticated user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	limit, cursor := pageParams(c)

	items, next, err := h.orderQueries.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := gin.H{"orders": resdto.FromOrderListItems(items)}
	if next != nil {
		resp["nextCursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update order status
// @Description Advance an order along the delivery lifecycle (admin)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Next status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format", nil)
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.orderCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order status", nil)
		case errors.Is(err, order.ErrStatusTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) respondPlaceOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
	case errors.Is(err, order.ErrEmptyAddress), errors.Is(err, order.ErrAddressTooLong):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shipping address", nil)
	case errors.Is(err, order.ErrInvalidPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid phone number", nil)
	case errors.Is(err, commands.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough stock for one or more items", nil)
	case errors.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, coupon.ErrCouponExpired), errors.Is(err, coupon.ErrCouponInactive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired coupon", nil)
	case errors.Is(err, commands.ErrOrderInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order request is currently being processed", nil)
	case errors.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate order request with different parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// pageParams reads the keyset pagination query parameters shared by the
// list endpoints.
func pageParams(c *gin.Context) (int, *queries.Cursor) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return limit, cursor
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}

// hashPlaceOrderRequest fingerprints the request so a reused idempotency
// key with different parameters can be rejected.
func hashPlaceOrderRequest(userID uuid.UUID, req reqdto.PlaceOrderRequest) string {
	payload, _ := json.Marshal(struct {
		UserID uuid.UUID
		Req    reqdto.PlaceOrderRequest
	}{userID, req})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
