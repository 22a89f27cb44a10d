package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/services/mocks"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderTest() (*mocks.OrderService, *handlers.OrderHandler) {
	mockOrderService := new(mocks.OrderService)
	return mockOrderService, handlers.NewOrderHandler(mockOrderService, testPagination)
}

func sampleOrder(id int64) models.Order {
	placed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return models.Order{
		ID:        id,
		UserID:    testUserID,
		Name:      "Jane Doe",
		Address:   "1 Main St",
		Total:     1900,
		CreatedAt: placed.Add(-time.Hour),
		OrderedAt: placed,
	}
}

func TestCheckout(t *testing.T) {
	t.Run("Success - Order Placed", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		body := `{"name": "Jane Doe", "address": "1 Main St"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", strings.NewReader(body), testUserID, nil)
		rr := httptest.NewRecorder()

		order := sampleOrder(7)
		mockOrderService.On("Checkout", mock.Anything, testUserID, mock.MatchedBy(func(r *models.CheckoutRequest) bool {
			return r.Name != nil && *r.Name == "Jane Doe" && r.Address != nil && *r.Address == "1 Main St"
		})).Return(&order, nil).Once()

		// Act
		orderHandler.Checkout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Order
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
		assert.Equal(t, order, got)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Name Not A String", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"name": 12, "address": "x"}`), testUserID, nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.Checkout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeEnvelope(t, rr)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
		mockOrderService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", strings.NewReader(`{"name": "a", "address": "b"}`), testUserID, nil)
		rr := httptest.NewRecorder()

		mockOrderService.On("Checkout", mock.Anything, testUserID, mock.Anything).Return(nil, appErrors.NotFoundError("Cart is empty")).Once()

		// Act
		orderHandler.Checkout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Cart is empty", decodeEnvelope(t, rr).Error.Message)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/orders", strings.NewReader(`{}`), nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.Checkout()(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Success - Paginated With Links", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders?offset=2&limit=2", nil, testUserID, nil)
		rr := httptest.NewRecorder()

		orders := []models.Order{sampleOrder(9), sampleOrder(8)}
		mockOrderService.On("ListOrders", mock.Anything, testUserID, 2, 2).Return(orders, 5, nil).Once()

		// Act
		orderHandler.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var page struct {
			Data   []models.Order   `json:"data"`
			Total  int              `json:"total"`
			Limit  int              `json:"limit"`
			Offset int              `json:"offset"`
			Links  models.PageLinks `json:"_links"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &page))
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, "/api/v1/orders?limit=2&offset=2", page.Links.Self.Href)
		require.NotNil(t, page.Links.Prev)
		assert.Equal(t, "/api/v1/orders?limit=2&offset=0", page.Links.Prev.Href)
		require.NotNil(t, page.Links.Next)
		assert.Equal(t, "/api/v1/orders?limit=2&offset=4", page.Links.Next.Href)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Success - Limit Clamped", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders?limit=1000", nil, testUserID, nil)
		rr := httptest.NewRecorder()

		mockOrderService.On("ListOrders", mock.Anything, testUserID, 0, 100).Return([]models.Order{sampleOrder(1)}, 1, nil).Once()

		// Act
		orderHandler.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - No Orders", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders", nil, testUserID, nil)
		rr := httptest.NewRecorder()

		mockOrderService.On("ListOrders", mock.Anything, testUserID, 0, 10).Return(nil, 0, appErrors.NotFoundError("No orders found")).Once()

		// Act
		orderHandler.ListOrders()(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockOrderService.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success - Order With Lines", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/7", nil, testUserID, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		order := sampleOrder(7)
		detail := &models.OrderDetail{
			Order: &order,
			Lines: []models.CartLineDetail{{CartLine: models.CartLine{ID: 1, CartID: 7, ProductID: 3, Amount: 2}, Title: "Mug", Price: 950, LineTotal: 1900}},
			Total: 1900,
			Count: 1,
		}
		mockOrderService.On("GetOrderDetail", mock.Anything, testUserID, int64(7), 0, 10).Return(detail, nil).Once()

		// Act
		orderHandler.GetOrder()(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.OrderDetail
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
		assert.Equal(t, int64(1900), got.Total)
		require.NotNil(t, got.Links)
		assert.Nil(t, got.Links.Next)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Other User's Order", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/8", nil, testUserID, map[string]string{"id": "8"})
		rr := httptest.NewRecorder()

		mockOrderService.On("GetOrderDetail", mock.Anything, testUserID, int64(8), 0, 10).Return(nil, appErrors.NotFoundError("Order not found")).Once()

		// Act
		orderHandler.GetOrder()(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockOrderService.AssertExpectations(t)
	})

	t.Run("Failure - Missing ID", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/", nil, testUserID, nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder()(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "GetOrderDetail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
