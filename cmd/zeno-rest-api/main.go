// cmd/zeno-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/middleware"
	v1 "github.com/DudssFnx/zeno-ecommerce-sub004/internal/api/rest/v1"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/app"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/infrastructure/persistence"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/config"
	"github.com/DudssFnx/zeno-ecommerce-sub004/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// initializeDependencies sets up the database, repositories and services
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*v1.Services, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	tenantRepo, err := persistence.NewGormTenantRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant repository: %w", err)
	}
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	categoryRepo, err := persistence.NewGormCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	cartRepo, err := persistence.NewGormCartRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart repository: %w", err)
	}
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	customerRepo, err := persistence.NewGormCustomerRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer repository: %w", err)
	}
	creditRepo, err := persistence.NewGormCreditRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create credit repository: %w", err)
	}
	themeRepo, err := persistence.NewGormThemeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create theme repository: %w", err)
	}
	slideRepo, err := persistence.NewGormSlideRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create slide repository: %w", err)
	}

	// Initialize services
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	authService, err := app.NewAuthService(tenantRepo, userRepo, cfg.Auth.JWTSecret, tokenTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	tenantService, err := app.NewTenantService(tenantRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant service: %w", err)
	}
	userService, err := app.NewUserService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	categoryService, err := app.NewCategoryService(categoryRepo, productRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	productService, err := app.NewProductService(productRepo, categoryRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	cartService, err := app.NewCartService(cartRepo, productRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %w", err)
	}
	checkoutService, err := app.NewCheckoutService(cartRepo, productRepo, orderRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}
	orderService, err := app.NewOrderService(orderRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	quickSaleService, err := app.NewQuickSaleService(orderRepo, productRepo, customerRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create quick sale service: %w", err)
	}
	customerService, err := app.NewCustomerService(customerRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}
	creditService, err := app.NewCreditService(creditRepo, customerRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %w", err)
	}
	appearanceService, err := app.NewAppearanceService(themeRepo, slideRepo, tenantRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create appearance service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		Auth:       authService,
		Tenant:     tenantService,
		User:       userService,
		Category:   categoryService,
		Product:    productService,
		Cart:       cartService,
		Checkout:   checkoutService,
		Order:      orderService,
		QuickSale:  quickSaleService,
		Customer:   customerService,
		Credit:     creditService,
		Appearance: appearanceService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *v1.Services, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.TenantHeader, v1.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics and rate limiting
	metrics := middleware.NewMetrics()
	r.Use(metrics.Handler())
	r.Use(middleware.NewRateLimiter(float64(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst).Handler())

	r.GET("/metrics", metrics.Exporter())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	v1.SetupRoutes(r, *services, cfg.Auth.JWTSecret)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig.String(), ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
