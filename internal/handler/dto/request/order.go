package request

type PlaceOrderRequest struct {
	ShippingAddress string  `json:"shippingAddress" binding:"required"`
	Phone           string  `json:"phone" binding:"required"`
	CouponCode      *string `json:"couponCode,omitempty"`
}

func (r *PlaceOrderRequest) GetCouponCode() *string {
	if r.CouponCode == nil || *r.CouponCode == "" {
		return nil
	}
	return r.CouponCode
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
