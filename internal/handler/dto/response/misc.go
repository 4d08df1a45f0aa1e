package response

import (
	"time"

	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponQuoteResponse struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	SubtotalCents      int64   `json:"subtotalCents"`
	TotalCents         int64   `json:"totalCents"`
}

func FromCouponQuote(q *commands.CouponQuote) *CouponQuoteResponse {
	var resp CouponQuoteResponse
	_ = copier.Copy(&resp, q)
	return &resp
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
	NextCursor    *string                 `json:"nextCursor,omitempty"`
}

func FromNotificationViews(items []*queries.NotificationView, unread int64) *NotificationListResponse {
	notifications := make([]*NotificationResponse, len(items))
	for i, it := range items {
		var r NotificationResponse
		_ = copier.Copy(&r, it)
		notifications[i] = &r
	}
	return &NotificationListResponse{Notifications: notifications, UnreadCount: unread}
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	ProductID uuid.UUID `json:"productId"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewViews(items []*queries.ReviewView) []*ReviewResponse {
	resp := make([]*ReviewResponse, len(items))
	for i, it := range items {
		var r ReviewResponse
		_ = copier.Copy(&r, it)
		resp[i] = &r
	}
	return resp
}

type AssistantResponse struct {
	Text string `json:"text"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
