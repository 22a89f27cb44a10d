package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64, offset, limit int) (*models.CartView, error)
	AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartLine, error)
	GetItem(ctx context.Context, userID, lineID int64) (*models.CartLineDetail, error)
	UpdateItem(ctx context.Context, userID, lineID int64, req *models.UpdateItemRequest) (*models.CartLine, error)
	RemoveItem(ctx context.Context, userID, lineID int64) error
}

type cartService struct {
	userRepo   repository.UserRepository
	cartRepo   repository.CartRepository
	transactor repository.Transactor
	validator  ValidationService
}

func NewCartService(userRepo repository.UserRepository, cartRepo repository.CartRepository, transactor repository.Transactor, validator ValidationService) CartService {
	return &cartService{
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		transactor: transactor,
		validator:  validator,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID int64, offset, limit int) (*models.CartView, error) {

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindActiveCart(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Cart not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	lines, count, err := s.cartRepo.ListLines(ctx, cart.ID, offset, limit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to retrieve cart lines").WithError(err)
	}

	total, err := s.cartRepo.ComputeTotal(ctx, cart.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to compute cart total").WithError(err)
	}

	return &models.CartView{
		CartID: cart.ID,
		Lines:  lines,
		Total:  total,
		Count:  count,
	}, nil
}

// AddItem puts a product in the user's active cart, creating the cart if
// needed. Adding the same product again overwrites its amount.
func (s *cartService) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartLine, error) {

	logger := middleware.LoggerFromContext(ctx)

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	var line *models.CartLine

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {

		cart, err := s.lockOrCreateCart(ctx, userID)
		if err != nil {
			return err
		}

		fields, err := s.validator.ValidateCartLine(ctx, req.ProductID, req.Amount)
		if err != nil {
			return appErrors.DatabaseError("Failed to validate cart line").WithError(err)
		}

		if len(fields) > 0 {
			return appErrors.ValidationErrors(fields)
		}

		line, err = s.cartRepo.UpsertLine(ctx, cart.ID, *req.ProductID, *req.Amount)
		if err != nil {
			return appErrors.DatabaseError("Failed to add item to cart").WithError(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	metrics.CartLinesUpserted.Inc()
	logger.Info("Cart line upserted", slog.Int64("cartId", line.CartID), slog.Int64("lineId", line.ID))

	return line, nil
}

func (s *cartService) GetItem(ctx context.Context, userID, lineID int64) (*models.CartLineDetail, error) {

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindActiveCart(ctx, userID)
	if err != nil {
		return nil, lineLookupError(err)
	}

	line, err := s.cartRepo.GetLine(ctx, cart.ID, lineID)
	if err != nil {
		return nil, lineLookupError(err)
	}

	return line, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, lineID int64, req *models.UpdateItemRequest) (*models.CartLine, error) {

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	var updated *models.CartLine

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {

		cart, err := s.cartRepo.LockActiveCart(ctx, userID)
		if err != nil {
			return lineLookupError(err)
		}

		line, err := s.cartRepo.GetLine(ctx, cart.ID, lineID)
		if err != nil {
			return lineLookupError(err)
		}

		fields, err := s.validator.ValidateCartLine(ctx, &line.ProductID, req.Amount)
		if err != nil {
			return appErrors.DatabaseError("Failed to validate cart line").WithError(err)
		}

		if len(fields) > 0 {
			return appErrors.ValidationErrors(fields)
		}

		updated, err = s.cartRepo.UpdateLineAmount(ctx, cart.ID, lineID, *req.Amount)
		if err != nil {
			return lineLookupError(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, lineID int64) error {

	if _, err := resolveUser(ctx, s.userRepo, userID); err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {

		cart, err := s.cartRepo.LockActiveCart(ctx, userID)
		if err != nil {
			return lineLookupError(err)
		}

		deleted, err := s.cartRepo.DeleteLine(ctx, cart.ID, lineID)
		if err != nil {
			return appErrors.DatabaseError("Failed to remove cart line").WithError(err)
		}

		if !deleted {
			return appErrors.NotFoundError("Cart line not found")
		}

		return nil
	})
}

// lockOrCreateCart returns the user's active cart locked for the rest of the
// transaction, creating it when there is none.
func (s *cartService) lockOrCreateCart(ctx context.Context, userID int64) (*models.Cart, error) {

	cart, err := s.cartRepo.LockActiveCart(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	cart, err = s.cartRepo.CreateCart(ctx, userID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, repository.ErrActiveCartExists) {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	// a concurrent request created it first
	cart, err = s.cartRepo.LockActiveCart(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	return cart, nil
}

func lineLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFoundError("Cart line not found").WithError(err)
	}

	return appErrors.DatabaseError("Failed to retrieve cart line").WithError(err)
}

// resolveUser maps a missing acting user to NotFound.
func resolveUser(ctx context.Context, userRepo repository.UserRepository, userID int64) (*models.User, error) {

	user, err := userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to retrieve user").WithError(err)
	}

	return user, nil
}
