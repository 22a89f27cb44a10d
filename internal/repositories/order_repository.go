package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
)

type OrderRepository interface {
	MarkOrdered(ctx context.Context, cartID, userID int64, name, address string) (*models.Order, error)
	ListOrders(ctx context.Context, userID *int64, offset, limit int) ([]models.Order, int, error)
	GetOrder(ctx context.Context, orderID, userID int64) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderTotalExpr = `
		COALESCE((
			SELECT SUM(p.price * cl.amount)
			FROM cart_lines cl
			JOIN products p ON p.id = cl.product_id
			WHERE cl.cart_id = c.id
		), 0)`

// MarkOrdered is the only statement that sets ordered = true. It matches
// nothing once the cart has been ordered, so a cart converts at most once.
func (r *orderRepository) MarkOrdered(ctx context.Context, cartID, userID int64, name, address string) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE carts
		SET ordered = true, name = $1, address = $2, ordered_at = NOW()
		WHERE id = $3 AND user_id = $4 AND ordered = false
		RETURNING id, user_id, name, address, created_at, ordered_at`

	order := &models.Order{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, name, address, cartID, userID).Scan(&order.ID, &order.UserID, &order.Name, &order.Address, &order.CreatedAt, &order.OrderedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to mark cart as ordered: %w", err)
	}

	return order, nil
}

// ListOrders returns ordered carts newest first. A nil userID lists every
// user's orders.
func (r *orderRepository) ListOrders(ctx context.Context, userID *int64, offset, limit int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM carts WHERE ordered = true AND ($1::bigint IS NULL OR user_id = $1)`

	if err := conn(ctx, r.DB).QueryRowContext(dbCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
		SELECT c.id, c.user_id, c.name, c.address, c.created_at, c.ordered_at,` + orderTotalExpr + `
		FROM carts c
		WHERE c.ordered = true AND ($1::bigint IS NULL OR c.user_id = $1)
		ORDER BY c.ordered_at DESC, c.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Name, &order.Address, &order.CreatedAt, &order.OrderedAt, &order.Total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, total, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.user_id, c.name, c.address, c.created_at, c.ordered_at,` + orderTotalExpr + `
		FROM carts c
		WHERE c.id = $1 AND c.user_id = $2 AND c.ordered = true`

	order := &models.Order{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, orderID, userID).Scan(&order.ID, &order.UserID, &order.Name, &order.Address, &order.CreatedAt, &order.OrderedAt, &order.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying order: %w", err)
	}

	return order, nil
}
