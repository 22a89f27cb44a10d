package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FindActiveCart(ctx context.Context, userID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) LockActiveCart(ctx context.Context, userID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) CreateCart(ctx context.Context, userID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *CartRepository) FindLine(ctx context.Context, cartID, productID int64) (*models.CartLine, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *CartRepository) GetLine(ctx context.Context, cartID, lineID int64) (*models.CartLineDetail, error) {
	args := m.Called(ctx, cartID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLineDetail), args.Error(1)
}

func (m *CartRepository) UpsertLine(ctx context.Context, cartID, productID int64, amount int) (*models.CartLine, error) {
	args := m.Called(ctx, cartID, productID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *CartRepository) UpdateLineAmount(ctx context.Context, cartID, lineID int64, amount int) (*models.CartLine, error) {
	args := m.Called(ctx, cartID, lineID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartLine), args.Error(1)
}

func (m *CartRepository) DeleteLine(ctx context.Context, cartID, lineID int64) (bool, error) {
	args := m.Called(ctx, cartID, lineID)
	return args.Bool(0), args.Error(1)
}

func (m *CartRepository) ListLines(ctx context.Context, cartID int64, offset, limit int) ([]models.CartLineDetail, int, error) {
	args := m.Called(ctx, cartID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.CartLineDetail), args.Int(1), args.Error(2)
}

func (m *CartRepository) CountLines(ctx context.Context, cartID int64) (int, error) {
	args := m.Called(ctx, cartID)
	return args.Int(0), args.Error(1)
}

func (m *CartRepository) ComputeTotal(ctx context.Context, cartID int64) (int64, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) MarkOrdered(ctx context.Context, cartID, userID int64, name, address string) (*models.Order, error) {
	args := m.Called(ctx, cartID, userID, name, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderRepository) ListOrders(ctx context.Context, userID *int64, offset, limit int) ([]models.Order, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Order), args.Int(1), args.Error(2)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckRateLimit(ctx context.Context, key string) (bool, int, int, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

// Transactor runs fn inline and records whether it committed or rolled back.
type Transactor struct {
	Commits   int
	Rollbacks int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		t.Rollbacks++
		return err
	}

	t.Commits++
	return nil
}
