package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
)

type ProductRepository interface {
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT id, category_id, title, price, description, COALESCE(image, '')
		FROM products
		WHERE id = $1`

	err := conn(ctx, r.DB).QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.CategoryID, &product.Title, &product.Price, &product.Description, &product.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}
