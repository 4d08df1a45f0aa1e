package request

type ValidateCouponRequest struct {
	Code          string `json:"code" binding:"required"`
	SubtotalCents int64  `json:"subtotalCents" binding:"required,min=0"`
}
