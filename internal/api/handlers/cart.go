package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	pagination  config.Pagination
}

func NewCartHandler(cartService service.CartService, pagination config.Pagination) *CartHandler {
	return &CartHandler{cartService: cartService, pagination: pagination}
}

// GetCart godoc
//	@Summary		Get the active cart
//	@Description	Returns a page of the lines in the authenticated user's active cart together with the cart total.
//	@Tags			Cart
//	@Produce		json
//	@Param			offset	query		int						false	"Lines to skip"		minimum(0)
//	@Param			limit	query		int						false	"Lines per page"	minimum(1)
//	@Success		200		{object}	models.CartView			"Active cart"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User or active cart not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page := utils.ParsePageParams(r, h.pagination.DefaultLimit, h.pagination.MaxLimit)

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID, page.Offset, page.Limit)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		links := utils.PageLinksFor(r, cart.Count, page)
		cart.Links = &links

		logger.Info("Cart retrieved successfully", slog.Int64("cartId", cart.CartID), slog.Int("lines", len(cart.Lines)))
		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds a product to the active cart, creating the cart when there is none. Adding a product that is already in the cart replaces its amount.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and amount"
//	@Success		201		{object}	models.CartLine			"Stored cart line"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Failure		429		{object}	response.ErrorResponse	"Too many requests"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized add item attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid add item input", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		line, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("cartId", line.CartID), slog.Int64("productId", line.ProductID), slog.Int("amount", line.Amount))
		response.Success(w, http.StatusCreated, line)
	}
}

// GetItem godoc
//	@Summary		Get a cart line
//	@Description	Returns one line of the active cart with its product title, price and line total.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		int						true	"Cart line ID"
//	@Success		200	{object}	models.CartLineDetail	"Cart line"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Line not found in the active cart"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/line/{id} [get]
func (h *CartHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart line access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		lineID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		line, err := h.cartService.GetItem(r.Context(), claims.UserID, lineID)
		if err != nil {
			logger.Error("Failed to get cart line", slog.Int64("lineId", lineID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, line)
	}
}

// UpdateItem godoc
//	@Summary		Change the amount of a cart line
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Cart line ID"
//	@Param			item	body		models.UpdateItemRequest	true	"New amount"
//	@Success		200		{object}	models.CartLine				"Updated cart line"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Line not found in the active cart"
//	@Failure		429		{object}	response.ErrorResponse		"Too many requests"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/line/{id} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart line update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		lineID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.Int64("lineId", lineID))

		var req models.UpdateItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid update item input", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		line, err := h.cartService.UpdateItem(r.Context(), claims.UserID, lineID, &req)
		if err != nil {
			logger.Error("Failed to update cart line", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart line updated", slog.Int("amount", line.Amount))
		response.Success(w, http.StatusOK, line)
	}
}

// RemoveItem godoc
//	@Summary	Remove a cart line
//	@Tags		Cart
//	@Param		id	path	int	true	"Cart line ID"
//	@Success	204	"Line removed"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Line not found in the active cart"
//	@Failure	429	{object}	response.ErrorResponse	"Too many requests"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/cart/line/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart line removal attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		lineID, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart line id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), claims.UserID, lineID); err != nil {
			logger.Error("Failed to remove cart line", slog.Int64("lineId", lineID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart line removed", slog.Int64("lineId", lineID))
		response.NoContent(w)
	}
}
