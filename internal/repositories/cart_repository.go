package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
	"github.com/lib/pq"
)

// ErrActiveCartExists is returned by CreateCart when another request created
// the user's active cart first.
var ErrActiveCartExists = errors.New("active cart already exists")

type CartRepository interface {
	FindActiveCart(ctx context.Context, userID int64) (*models.Cart, error)
	LockActiveCart(ctx context.Context, userID int64) (*models.Cart, error)
	CreateCart(ctx context.Context, userID int64) (*models.Cart, error)
	FindLine(ctx context.Context, cartID, productID int64) (*models.CartLine, error)
	GetLine(ctx context.Context, cartID, lineID int64) (*models.CartLineDetail, error)
	UpsertLine(ctx context.Context, cartID, productID int64, amount int) (*models.CartLine, error)
	UpdateLineAmount(ctx context.Context, cartID, lineID int64, amount int) (*models.CartLine, error)
	DeleteLine(ctx context.Context, cartID, lineID int64) (bool, error)
	ListLines(ctx context.Context, cartID int64, offset, limit int) ([]models.CartLineDetail, int, error)
	CountLines(ctx context.Context, cartID int64) (int, error)
	ComputeTotal(ctx context.Context, cartID int64) (int64, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const activeCartQuery = `
		SELECT id, user_id, ordered, name, address, created_at, ordered_at
		FROM carts
		WHERE user_id = $1 AND ordered = false`

func (r *cartRepository) FindActiveCart(ctx context.Context, userID int64) (*models.Cart, error) {
	return r.activeCart(ctx, activeCartQuery, userID)
}

// LockActiveCart holds a row lock on the active cart until the surrounding
// transaction ends.
func (r *cartRepository) LockActiveCart(ctx context.Context, userID int64) (*models.Cart, error) {
	return r.activeCart(ctx, activeCartQuery+" FOR UPDATE", userID)
}

func (r *cartRepository) activeCart(ctx context.Context, query string, userID int64) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.Ordered, &cart.Name, &cart.Address, &cart.CreatedAt, &cart.OrderedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying active cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) CreateCart(ctx context.Context, userID int64) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO carts (user_id, ordered, created_at)
		VALUES ($1, false, NOW())
		ON CONFLICT (user_id) WHERE ordered = false DO NOTHING
		RETURNING id, user_id, ordered, created_at`

	cart := &models.Cart{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.Ordered, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return nil, ErrActiveCartExists
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

// FindLine is a read-side lookup of a product's line in a cart. Writes go
// through UpsertLine, which resolves the conflict in a single statement.
func (r *cartRepository) FindLine(ctx context.Context, cartID, productID int64) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, product_id, amount
		FROM cart_lines
		WHERE cart_id = $1 AND product_id = $2`

	line := &models.CartLine{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, cartID, productID).Scan(&line.ID, &line.CartID, &line.ProductID, &line.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying cart line: %w", err)
	}

	return line, nil
}

func (r *cartRepository) GetLine(ctx context.Context, cartID, lineID int64) (*models.CartLineDetail, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT cl.id, cl.cart_id, cl.product_id, cl.amount, p.title, p.price
		FROM cart_lines cl
		JOIN products p ON p.id = cl.product_id
		WHERE cl.cart_id = $1 AND cl.id = $2`

	line := &models.CartLineDetail{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, cartID, lineID).Scan(&line.ID, &line.CartID, &line.ProductID, &line.Amount, &line.Title, &line.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying cart line: %w", err)
	}

	line.LineTotal = line.Price * int64(line.Amount)

	return line, nil
}

// UpsertLine inserts the line or overwrites its amount in a single statement.
func (r *cartRepository) UpsertLine(ctx context.Context, cartID, productID int64, amount int) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_lines (cart_id, product_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id) DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id, cart_id, product_id, amount`

	line := &models.CartLine{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, cartID, productID, amount).Scan(&line.ID, &line.CartID, &line.ProductID, &line.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart line: %w", err)
	}

	return line, nil
}

func (r *cartRepository) UpdateLineAmount(ctx context.Context, cartID, lineID int64, amount int) (*models.CartLine, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_lines
		SET amount = $1
		WHERE cart_id = $2 AND id = $3
		RETURNING id, cart_id, product_id, amount`

	line := &models.CartLine{}

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, amount, cartID, lineID).Scan(&line.ID, &line.CartID, &line.ProductID, &line.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update cart line: %w", err)
	}

	return line, nil
}

func (r *cartRepository) DeleteLine(ctx context.Context, cartID, lineID int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_lines WHERE cart_id = $1 AND id = $2`

	result, err := conn(ctx, r.DB).ExecContext(dbCtx, query, cartID, lineID)
	if err != nil {
		return false, fmt.Errorf("failed to delete cart line: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deletedRows > 0, nil
}

func (r *cartRepository) ListLines(ctx context.Context, cartID int64, offset, limit int) ([]models.CartLineDetail, int, error) {
	total, err := r.CountLines(ctx, cartID)
	if err != nil {
		return nil, 0, err
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT cl.id, cl.cart_id, cl.product_id, cl.amount, p.title, p.price
		FROM cart_lines cl
		JOIN products p ON p.id = cl.product_id
		WHERE cl.cart_id = $1
		ORDER BY cl.id
		LIMIT $2 OFFSET $3`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, cartID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer rows.Close()

	lines := []models.CartLineDetail{}

	for rows.Next() {
		var line models.CartLineDetail
		if err := rows.Scan(&line.ID, &line.CartID, &line.ProductID, &line.Amount, &line.Title, &line.Price); err != nil {
			return nil, 0, fmt.Errorf("failed to scan cart line: %w", err)
		}
		line.LineTotal = line.Price * int64(line.Amount)
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, total, nil
}

func (r *cartRepository) CountLines(ctx context.Context, cartID int64) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, `SELECT COUNT(*) FROM cart_lines WHERE cart_id = $1`, cartID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cart lines: %w", err)
	}

	return count, nil
}

// ComputeTotal sums price * amount over the cart's lines. An empty cart is 0.
func (r *cartRepository) ComputeTotal(ctx context.Context, cartID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE(SUM(p.price * cl.amount), 0)
		FROM cart_lines cl
		JOIN products p ON p.id = cl.product_id
		WHERE cl.cart_id = $1`

	var total int64

	if err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, cartID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to compute cart total: %w", err)
	}

	return total, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
