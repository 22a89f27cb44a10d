package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/ecommerce-cart-service/docs"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/handlers"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/health"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/metrics"
	repository "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/repositories"
	service "github.com/aaravmahajanofficial/ecommerce-cart-service/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/tracing"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/pkg/sendGrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Ecommerce Cart Service API
//	@version					1.0
//	@description				Shopping cart and checkout for the e-commerce platform.
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Env, cfg.Tracing)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	db, repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	notifier := service.NewNoopNotifier()
	if cfg.SendGrid.Enabled {
		notifier = service.NewEmailNotifier(sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}

	validationService := service.NewValidationService(repos.Products)
	cartService := service.NewCartService(repos.Users, repos.Carts, repos.Transactor, validationService)
	orderService := service.NewOrderService(repos.Users, repos.Carts, repos.Orders, repos.Transactor, validationService, notifier)

	cartHandler := handlers.NewCartHandler(cartService, cfg.Pagination)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.Pagination)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	rateLimiter := middleware.NewRateLimitMiddleware(repository.NewRateLimitRepo(redisClient, cfg))

	healthChecker, err := health.NewHealthHandler(&health.Endpoints{DB: db.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// reads only need a token; writes are also throttled per user
	read := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(h)
	}
	write := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(rateLimiter.Limit(h))
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/cart", read(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart", write(cartHandler.AddItem()))
	routerMux.HandleFunc("GET /api/v1/cart/line/{id}", read(cartHandler.GetItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/line/{id}", write(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/line/{id}", write(cartHandler.RemoveItem()))
	routerMux.HandleFunc("GET /api/v1/orders", read(orderHandler.ListOrders()))
	routerMux.HandleFunc("POST /api/v1/orders", write(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", read(orderHandler.GetOrder()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining; metrics sits closest to the mux so it sees the matched pattern
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "ecommerce-cart-service")

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
