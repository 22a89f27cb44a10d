package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID int64, offset, limit int) (*models.CartView, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartView), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartLine, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *CartService) GetItem(ctx context.Context, userID, lineID int64) (*models.CartLineDetail, error) {
	args := m.Called(ctx, userID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLineDetail), args.Error(1)
}

func (m *CartService) UpdateItem(ctx context.Context, userID, lineID int64, req *models.UpdateItemRequest) (*models.CartLine, error) {
	args := m.Called(ctx, userID, lineID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID, lineID int64) error {
	args := m.Called(ctx, userID, lineID)
	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, userID int64, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, userID int64, offset, limit int) ([]models.Order, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderService) GetOrderDetail(ctx context.Context, userID, orderID int64, offset, limit int) (*models.OrderDetail, error) {
	args := m.Called(ctx, userID, orderID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderDetail), args.Error(1)
}

type OrderNotifier struct {
	mock.Mock
}

func (m *OrderNotifier) OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error {
	args := m.Called(ctx, user, order)
	return args.Error(0)
}
