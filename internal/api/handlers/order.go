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

type OrderHandler struct {
	orderService service.OrderService
	pagination   config.Pagination
}

func NewOrderHandler(orderService service.OrderService, pagination config.Pagination) *OrderHandler {
	return &OrderHandler{orderService: orderService, pagination: pagination}
}

// Checkout godoc
//	@Summary		Place an order
//	@Description	Turns the active cart into an order with the given shipping name and address. The next item added starts a new cart.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CheckoutRequest	true	"Shipping details"
//	@Success		201		{object}	models.Order			"Placed order"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User not found, no active cart or empty cart"
//	@Failure		429		{object}	response.ErrorResponse	"Too many requests"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout input", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.Checkout(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully", slog.Int64("orderId", order.ID), slog.Int64("total", order.Total))
		response.Success(w, http.StatusCreated, order)
	}
}

// ListOrders godoc
//	@Summary		List orders
//	@Description	Lists the user's orders newest first. Admins see every order.
//	@Tags			Orders
//	@Produce		json
//	@Param			offset	query		int												false	"Orders to skip"	minimum(0)
//	@Param			limit	query		int												false	"Orders per page"	minimum(1)
//	@Success		200		{object}	models.PaginatedResponse{Data=[]models.Order}	"Page of orders"
//	@Failure		401		{object}	response.ErrorResponse							"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse							"User not found or no orders"
//	@Failure		500		{object}	response.ErrorResponse							"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order list attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page := utils.ParsePageParams(r, h.pagination.DefaultLimit, h.pagination.MaxLimit)

		logger = logger.With(slog.Int("offset", page.Offset), slog.Int("limit", page.Limit))

		orders, total, err := h.orderService.ListOrders(r.Context(), claims.UserID, page.Offset, page.Limit)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Orders listed successfully", slog.Int("count", len(orders)), slog.Int("total", total))
		response.Success(w, http.StatusOK, utils.Paginate(r, orders, total, page))
	}
}

// GetOrder godoc
//	@Summary		Get an order
//	@Description	Returns one of the user's orders with a page of its lines and the order total.
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path		int						true	"Order ID"
//	@Param			offset	query		int						false	"Lines to skip"		minimum(0)
//	@Param			limit	query		int						false	"Lines per page"	minimum(1)
//	@Success		200		{object}	models.OrderDetail		"Order with lines"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized order access attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.Int64("orderId", id))

		page := utils.ParsePageParams(r, h.pagination.DefaultLimit, h.pagination.MaxLimit)

		detail, err := h.orderService.GetOrderDetail(r.Context(), claims.UserID, id, page.Offset, page.Limit)
		if err != nil {
			logger.Error("Failed to get order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		links := utils.PageLinksFor(r, detail.Count, page)
		detail.Links = &links

		logger.Info("Order retrieved successfully")
		response.Success(w, http.StatusOK, detail)
	}
}
