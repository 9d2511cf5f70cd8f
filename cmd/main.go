package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/itsmeishwar/CampusPay/internal/handlers"
	"github.com/itsmeishwar/CampusPay/internal/jwt"
	"github.com/itsmeishwar/CampusPay/internal/logger"
	"github.com/itsmeishwar/CampusPay/internal/middlewares"
	"github.com/itsmeishwar/CampusPay/internal/models"
	"github.com/itsmeishwar/CampusPay/internal/repositories"
	"github.com/itsmeishwar/CampusPay/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title CampusPay API
// @version 1.0.0
// @description Campus payments backend: student wallets, QR payment requests, vendor sales and admin aggregates
// @host localhost:5001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		jwtSecret, jwtExp, paymentTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecret, jwtExp, paymentTTL,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, JWT, payment and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int, paymentTTLSecond int,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "5001")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "campus-fintech-secret-key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Payment request config
	if paymentTTLSecond, err = strconv.Atoi(getEnv("PAYMENT_REQUEST_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; transaction publishing is disabled when the address is empty
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "campuspay.transactions")

	return
}

// run initializes the logger and Kafka writer, wires the stores, services and
// handlers, and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond, paymentTTLSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Optional Kafka writer for transaction events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize stores
	accountRepo := repositories.NewAccountRepository()
	vendorRepo := repositories.NewVendorRepository()
	ledgerRepo := repositories.NewLedgerRepository()
	requestRepo := repositories.NewPaymentRequestRepository(accountRepo)

	// Initialize services
	authService := services.NewAuthService(accountRepo, vendorRepo, jwtService)
	walletService := services.NewWalletService(accountRepo, ledgerRepo, kafkaWriter)
	settlementService := services.NewSettlementService(accountRepo, vendorRepo, ledgerRepo, requestRepo, kafkaWriter)
	vendorService := services.NewVendorService(vendorRepo, ledgerRepo)
	adminService := services.NewAdminService(accountRepo, ledgerRepo)

	paymentTTL := time.Duration(paymentTTLSecond) * time.Second

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))
		r.Get("/health", handlers.NewHealthHandler())

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/wallet", handlers.NewGetWalletHandler(walletService))
			r.Post("/wallet/add-money", handlers.NewAddMoneyHandler(walletService))
			r.Get("/transactions", handlers.NewListTransactionsHandler(walletService))
			r.Post("/payments/qr", handlers.NewPaymentQRHandler(settlementService, paymentTTL))
			r.Post("/payments/process", handlers.NewPaymentProcessHandler(settlementService))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleVendor))
				r.Get("/vendor/sales", handlers.NewVendorSalesHandler(vendorService))
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireRole(models.RoleAdmin))
				r.Get("/admin/dashboard", handlers.NewAdminDashboardHandler(adminService))
				r.Get("/admin/users", handlers.NewAdminUsersHandler(adminService))
				r.Get("/admin/transactions", handlers.NewAdminTransactionsHandler(adminService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
