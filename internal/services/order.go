package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/repositories"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
)

type OrderService interface {
	Checkout(ctx context.Context, userID int64, req *models.CheckoutRequest) (*models.Order, error)
	ListOrders(ctx context.Context, userID int64, offset, limit int) ([]models.Order, int, error)
	GetOrderDetail(ctx context.Context, userID, orderID int64, offset, limit int) (*models.OrderDetail, error)
}

type orderService struct {
	userRepo   repository.UserRepository
	cartRepo   repository.CartRepository
	orderRepo  repository.OrderRepository
	transactor repository.Transactor
	validator  ValidationService
	notifier   OrderNotifier
}

func NewOrderService(userRepo repository.UserRepository, cartRepo repository.CartRepository, orderRepo repository.OrderRepository, transactor repository.Transactor, validator ValidationService, notifier OrderNotifier) OrderService {
	return &orderService{
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		orderRepo:  orderRepo,
		transactor: transactor,
		validator:  validator,
		notifier:   notifier,
	}
}

// Checkout seals the user's active cart into an order. The next AddItem
// starts a new cart.
func (s *orderService) Checkout(ctx context.Context, userID int64, req *models.CheckoutRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	var order *models.Order

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {

		cart, err := s.cartRepo.LockActiveCart(ctx, userID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.NotFoundError("No active cart").WithError(err)
			}
			return appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
		}

		count, err := s.cartRepo.CountLines(ctx, cart.ID)
		if err != nil {
			return appErrors.DatabaseError("Failed to retrieve cart lines").WithError(err)
		}

		if count == 0 {
			return appErrors.NotFoundError("Cart is empty")
		}

		name := cleanText(req.Name)
		address := cleanText(req.Address)

		if fields := s.validator.ValidateOrder(name, address); len(fields) > 0 {
			return appErrors.ValidationErrors(fields)
		}

		order, err = s.orderRepo.MarkOrdered(ctx, cart.ID, userID, *name, *address)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.NotFoundError("No active cart").WithError(err)
			}
			return appErrors.DatabaseError("Failed to place order").WithError(err)
		}

		order.Total, err = s.cartRepo.ComputeTotal(ctx, cart.ID)
		if err != nil {
			return appErrors.DatabaseError("Failed to compute order total").WithError(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	metrics.Checkouts.Inc()
	metrics.CheckoutValue.Add(float64(order.Total))

	logger.Info("Order placed", slog.Int64("orderId", order.ID), slog.Int64("total", order.Total))

	if err := s.notifier.OrderPlaced(ctx, user, order); err != nil {
		logger.Warn("Failed to send order confirmation", slog.Int64("orderId", order.ID), slog.String("error", err.Error()))
	}

	return order, nil
}

// ListOrders returns the user's orders newest first, or every order when the
// stored user is an admin.
func (s *orderService) ListOrders(ctx context.Context, userID int64, offset, limit int) ([]models.Order, int, error) {

	user, err := resolveUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, 0, err
	}

	var filter *int64
	if !user.Admin {
		filter = &user.ID
	}

	orders, total, err := s.orderRepo.ListOrders(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to retrieve orders").WithError(err)
	}

	if total == 0 {
		return nil, 0, appErrors.NotFoundError("No orders found")
	}

	return orders, total, nil
}

// GetOrderDetail returns one of the user's own orders with its lines.
func (s *orderService) GetOrderDetail(ctx context.Context, userID, orderID int64, offset, limit int) (*models.OrderDetail, error) {

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetOrder(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to retrieve order").WithError(err)
	}

	lines, count, err := s.cartRepo.ListLines(ctx, order.ID, offset, limit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to retrieve order lines").WithError(err)
	}

	return &models.OrderDetail{
		Order: order,
		Lines: lines,
		Total: order.Total,
		Count: count,
	}, nil
}

// cleanText trims and strips markup from an optional free-text field.
func cleanText(value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := strings.TrimSpace(utils.Sanitize(*value))

	return &cleaned
}
