package api

import (
	"errors"
	"net/http"

	"gocery/internal/domain/coupon"
	reqdto "gocery/internal/handler/dto/request"
	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
}

func NewCouponHandler(couponCommands commands.CouponCommands) *CouponHandler {
	return &CouponHandler{couponCommands: couponCommands}
}

// @Summary Validate coupon
// @Description Preview the discount a coupon code would apply to a subtotal; nothing is persisted
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon code and subtotal"
// @Success 200 {object} resdto.CouponQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.couponCommands.Validate(c.Request.Context(), req.Code, req.SubtotalCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, coupon.ErrCouponExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon has expired", nil)
		case errors.Is(err, coupon.ErrCouponInactive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon is not active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponQuote(quote))
}
