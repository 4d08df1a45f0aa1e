//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"

	resdto "gocery/internal/handler/dto/response"
	"gocery/tests/common/dbtest"
	"gocery/tests/common/httptest"
	"gocery/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CheckoutE2ETestSuite struct {
	e2e.SharedSuite
}

func TestCheckoutE2ESuite(t *testing.T) {
	suite.Run(t, new(CheckoutE2ETestSuite))
}

func (s *CheckoutE2ETestSuite) loginShopper(email string) string {
	dbtest.CreateTestUser(s.T(), s.DB, email, "customer")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]any{"email": email, "password": dbtest.TestUserPassword}, nil)

	var login resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &login)
	s.Require().NotEmpty(login.AccessToken)
	return "Bearer " + login.AccessToken
}

func (s *CheckoutE2ETestSuite) addToCart(token string, productID uuid.UUID) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/items",
		map[string]any{"productId": productID.String()},
		map[string]string{"Authorization": token})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CheckoutE2ETestSuite) setQuantity(token string, productID uuid.UUID, quantity int) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/cart/items/"+productID.String(),
		map[string]any{"quantity": quantity},
		map[string]string{"Authorization": token})
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CheckoutE2ETestSuite) getCart(token string) resdto.CartResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/cart", nil,
		map[string]string{"Authorization": token})

	var cart resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cart)
	return cart
}

func (s *CheckoutE2ETestSuite) TestCheckoutFlow() {
	orderBody := map[string]any{
		"shippingAddress": "12 Market Street",
		"phone":           "+15550100",
	}

	s.Run("placing an order clears the cart and decrements stock", func() {
		token := s.loginShopper("shopper@example.com")
		oil := dbtest.CreateTestProduct(s.T(), s.DB, "Olive Oil 500ml", 10000, 10, 5)
		salt := dbtest.CreateTestProduct(s.T(), s.DB, "Sea Salt", 5000, 0, 5)

		s.addToCart(token, oil)
		s.setQuantity(token, oil, 2)
		s.addToCart(token, salt)

		cart := s.getCart(token)
		want := resdto.CartResponse{
			Lines: []resdto.CartLineResponse{
				{ProductID: oil, Name: "Olive Oil 500ml", UnitPriceCents: 10000, DiscountPercent: 10, Quantity: 2, LineTotalCents: 18000},
				{ProductID: salt, Name: "Sea Salt", UnitPriceCents: 5000, DiscountPercent: 0, Quantity: 1, LineTotalCents: 5000},
			},
			TotalItems:      3,
			TotalPriceCents: 23000,
		}
		s.Empty(cmp.Diff(want, cart))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", orderBody,
			map[string]string{"Authorization": token, "Idempotency-Key": uuid.NewString()})

		var order resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)
		s.Equal("pending", order.Status)
		s.Equal(int64(23000), order.SubtotalCents)
		s.Equal(int64(23000), order.TotalCents)
		s.Len(order.Lines, 2)

		s.Equal(int32(3), dbtest.ProductStock(s.T(), s.DB, oil))
		s.Equal(int32(4), dbtest.ProductStock(s.T(), s.DB, salt))

		s.Empty(s.getCart(token).Lines)
	})

	s.Run("coupon discount applies at checkout only", func() {
		token := s.loginShopper("shopper@example.com")
		oil := dbtest.CreateTestProduct(s.T(), s.DB, "Olive Oil 500ml", 10000, 10, 5)
		dbtest.CreateTestCoupon(s.T(), s.DB, "FRESH10", 10, nil, true)

		s.addToCart(token, oil)
		s.setQuantity(token, oil, 2)

		// The coupon must not touch the cart totals.
		s.Equal(int64(18000), s.getCart(token).TotalPriceCents)

		body := map[string]any{
			"shippingAddress": "12 Market Street",
			"phone":           "+15550100",
			"couponCode":      "FRESH10",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", body,
			map[string]string{"Authorization": token, "Idempotency-Key": uuid.NewString()})

		var order resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)
		s.Equal(int64(18000), order.SubtotalCents)
		s.Equal(int64(16200), order.TotalCents)
		if s.NotNil(order.CouponCode) {
			s.Equal("FRESH10", *order.CouponCode)
		}
	})

	s.Run("replaying an idempotency key returns the same order once", func() {
		token := s.loginShopper("shopper@example.com")
		oil := dbtest.CreateTestProduct(s.T(), s.DB, "Olive Oil 500ml", 10000, 10, 5)
		s.addToCart(token, oil)

		key := uuid.NewString()
		headers := map[string]string{"Authorization": token, "Idempotency-Key": key}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", orderBody, headers)
		var first resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", orderBody, headers)
		var second resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &second)

		s.Equal(first.ID, second.ID)
		s.Equal(int32(4), dbtest.ProductStock(s.T(), s.DB, oil))
	})

	s.Run("insufficient stock rejects the order and keeps the cart", func() {
		token := s.loginShopper("shopper@example.com")
		oil := dbtest.CreateTestProduct(s.T(), s.DB, "Olive Oil 500ml", 10000, 10, 1)

		s.addToCart(token, oil)
		s.setQuantity(token, oil, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders", orderBody,
			map[string]string{"Authorization": token, "Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorContains(s.T(), rec, http.StatusConflict, "Not enough stock")

		s.Equal(int32(1), dbtest.ProductStock(s.T(), s.DB, oil))
		s.Len(s.getCart(token).Lines, 1)
	})

	s.Run("anonymous cart lives under the session id", func() {
		oil := dbtest.CreateTestProduct(s.T(), s.DB, "Olive Oil 500ml", 10000, 10, 5)
		headers := map[string]string{"X-Session-ID": "sid-e2e-1"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/items",
			map[string]any{"productId": oil.String()}, headers)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/cart", nil, headers)
		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cart)
		s.Len(cart.Lines, 1)

		// A different session sees an empty cart.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/cart", nil,
			map[string]string{"X-Session-ID": "sid-e2e-2"})
		var other resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &other)
		s.Empty(other.Lines)
	})
}
