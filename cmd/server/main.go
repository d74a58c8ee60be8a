package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "bloodlink-backend/internal/api/http"
	"bloodlink-backend/internal/config"
	"bloodlink-backend/internal/identity"
	"bloodlink-backend/internal/logger"
	"bloodlink-backend/internal/payments"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/repository/postgres"
	"bloodlink-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is a convenience for local runs; absence is not an error
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting BloodLink backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Auth configuration", "provider", cfg.Auth.Provider)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Token verification backend
	var verifier identity.TokenVerifier
	switch cfg.Auth.Provider {
	case "firebase":
		verifier, err = identity.NewFirebaseVerifier(context.Background(), cfg.Auth.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
	case "jwt":
		verifier = identity.NewJWTVerifier(cfg.Auth.JWTSecret)
	default:
		log.Fatalf("Unsupported auth provider %q", cfg.Auth.Provider)
	}

	authz := policy.NewAuthorizer(store.AccountRepository)

	emailSvc := service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey)

	accountSvc := service.NewAccountService(store.AccountRepository)
	requestSvc := service.NewRequestService(store.RequestRepository, store.AccountRepository, emailSvc)
	blogSvc := service.NewBlogService(store.BlogRepository)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, gateway, emailSvc)
	adminSvc := service.NewAdminService(store.AccountRepository, store.RequestRepository, store.PaymentRepository)

	handlers := httpapi.Handlers{
		Account: httpapi.NewAccountHandler(accountSvc, authz),
		Request: httpapi.NewRequestHandler(requestSvc, accountSvc, authz),
		Blog:    httpapi.NewBlogHandler(blogSvc, accountSvc, authz),
		Payment: httpapi.NewPaymentHandler(paymentSvc, authz),
		Admin:   httpapi.NewAdminHandler(adminSvc, accountSvc, requestSvc, authz),
	}

	middleware := httpapi.NewMiddleware(verifier, cfg.RequestTimeoutDuration())
	router := httpapi.NewRouter(handlers, middleware)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
