package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-template-studio/internal/database"
	"github.com/sbilibin2017/gw-template-studio/internal/dbtx"
	"github.com/sbilibin2017/gw-template-studio/internal/facades"
	"github.com/sbilibin2017/gw-template-studio/internal/facematch"
	"github.com/sbilibin2017/gw-template-studio/internal/handlers"
	"github.com/sbilibin2017/gw-template-studio/internal/jwt"
	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/metrics"
	"github.com/sbilibin2017/gw-template-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-template-studio/internal/repositories"
	"github.com/sbilibin2017/gw-template-studio/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-template-studio/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-template-studio API
// @version 1.0.0
// @description Photo template catalog with XP-metered AI image generation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// run initializes the logger, database, Redis, Kafka, the upstream clients
// and the HTTP server. It sets up routes, starts the reconciler and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Kafka ledger events are optional
	var ledgerWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			Async:                  true,
		}
		defer w.Close()
		ledgerWriter = w
		log.Infof("Publishing ledger events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Image storage
	var images services.ImageStore
	switch cfg.StorageBackend {
	case "s3":
		s3Store, err := facades.NewS3ImageStore(facades.S3Config{
			Endpoint:      cfg.S3.Endpoint,
			Region:        cfg.S3.Region,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			Bucket:        cfg.S3.Bucket,
			PublicBaseURL: cfg.S3.PublicBaseURL,
			UsePathStyle:  cfg.S3.UsePathStyle,
		})
		if err != nil {
			return err
		}
		images = s3Store
	case "local":
		images = facades.NewLocalImageStore(cfg.UploadDir, cfg.PublicURL+"/uploads")
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	// Mail is optional
	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = facades.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Warn("SMTP_HOST is empty, outgoing mail is disabled")
	}

	// Upstream clients
	genai := facades.NewGenAIClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAITimeout)
	gateway := facades.NewPaymentGatewayClient(cfg.PaymentBaseURL, cfg.PaymentKeyID, cfg.PaymentKeySecret,
		cfg.PaymentWebhookSecret, 15*time.Second)
	google := facades.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret,
		cfg.PublicURL+"/api/v1/auth/oauth/google/callback")

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)
	cookie := handlers.SessionCookie{Name: tokens.CookieName(), MaxAge: tokens.Expiration(), Secure: cfg.CookieSecure}

	// Initialize repositories
	txGetter := repositories.TxGetter(dbtx.FromContext)
	userRepo := repositories.NewUserRepository(db, txGetter)
	xpRepo := repositories.NewXPRepository(db, txGetter)
	templateRepo := repositories.NewTemplateRepository(db, txGetter)
	promptViewRepo := repositories.NewPromptViewRepository(db, txGetter)
	generationRepo := repositories.NewGenerationRepository(db, txGetter)
	settingsRepo := repositories.NewSettingsRepository(db, txGetter)
	modelRepo := repositories.NewAIModelRepository(db, txGetter)
	orderRepo := repositories.NewOrderRepository(db, txGetter)
	lockRepo := repositories.NewGenerationLockRepository(rdb, cfg.LockTTL)
	stateRepo := repositories.NewOAuthStateRepository(rdb, cfg.OAuthStateTTL)

	// Initialize services
	tx := dbtx.NewTransactor(db)
	xpService := services.NewXPService(xpRepo, ledgerWriter)
	authService := services.NewAuthService(userRepo, tx, xpService, tokens, mailer, cfg.SignupBonusXP,
		cfg.PublicURL+"/api/v1/auth/verify")
	oauthService := services.NewOAuthService(google, stateRepo, userRepo, tx, xpService, tokens, cfg.SignupBonusXP)
	profileService := services.NewProfileService(userRepo, images, cfg.MaxImageBytes)
	templateService := services.NewTemplateService(tx, xpService, templateRepo, promptViewRepo)
	settingsService := services.NewSettingsService(tx, settingsRepo, modelRepo, modelRepo)
	generationService := services.NewGenerationService(tx, xpService, generationRepo, templateRepo, modelRepo,
		settingsRepo, lockRepo, genai, images, cfg.MaxImageBytes, cfg.GenAITimeout)
	faceShapeService := services.NewFaceShapeService(genai, templateRepo, facematch.DefaultTable,
		cfg.FaceShapeModel, cfg.MaxImageBytes)
	paymentService := services.NewPaymentService(tx, xpService, orderRepo, userRepo, gateway, mailer, cfg.Packages)

	// Background reconciliation
	reconciler := services.NewReconciler(generationService, paymentService, cfg.StaleGenerationAge, cfg.StaleOrderAge)
	if err := reconciler.Start(cfg.ReconcileSchedule); err != nil {
		return fmt.Errorf("start reconciler: %w", err)
	}
	defer reconciler.Stop()

	limiter := middlewares.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				limiter.Cleanup(10 * time.Minute)
			}
		}
	}()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/health", handlers.NewHealthHandler(db))
	r.Handle("/metrics", metrics.Handler())
	if cfg.StorageBackend == "local" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	authMiddleware := middlewares.AuthMiddleware(tokens)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService, cookie))
		r.Post("/auth/logout", handlers.NewLogoutHandler(cookie))
		r.Get("/auth/verify", handlers.NewVerifyEmailHandler(authService))
		r.Get("/auth/oauth/google/start", handlers.NewOAuthStartHandler(oauthService))
		r.Get("/auth/oauth/google/callback", handlers.NewOAuthCallbackHandler(oauthService, cookie))
		r.Get("/templates", handlers.NewListTemplatesHandler(templateService))
		r.With(middlewares.OptionalAuthMiddleware(tokens)).
			Get("/templates/{slug}", handlers.NewGetTemplateHandler(templateService))
		r.Get("/models", handlers.NewListModelsHandler(settingsService))
		r.Get("/xp/packages", handlers.NewPackagesHandler(paymentService))
		r.Post("/payments/webhook", handlers.NewWebhookHandler(paymentService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", handlers.NewMeHandler(profileService))
			r.Put("/me/avatar", handlers.NewAvatarHandler(profileService, cfg.MaxImageBytes))
			r.Get("/me/settings", handlers.NewGetSettingsHandler(settingsService))
			r.With(txMiddleware).Put("/me/settings", handlers.NewUpdateSettingsHandler(settingsService))
			r.Get("/xp/ledger", handlers.NewLedgerHandler(xpService))
			r.Post("/templates/{id}/unlock", handlers.NewUnlockPromptHandler(templateService))
			r.Get("/generations", handlers.NewListGenerationsHandler(generationService))
			r.Get("/generations/{id}", handlers.NewGetGenerationHandler(generationService))
			r.Post("/payments/orders", handlers.NewCreateOrderHandler(paymentService))
			r.Post("/payments/verify", handlers.NewVerifyPaymentHandler(paymentService))

			r.Group(func(r chi.Router) {
				r.Use(limiter.Handler)
				r.Post("/generations", handlers.NewCreateGenerationHandler(generationService, cfg.MaxImageBytes))
				r.Post("/face-shape", handlers.NewFaceShapeHandler(faceShapeService, cfg.MaxImageBytes))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.AdminMiddleware)
				r.Use(txMiddleware)
				r.Get("/templates", handlers.NewAdminListTemplatesHandler(templateService))
				r.Post("/templates", handlers.NewAdminCreateTemplateHandler(templateService))
				r.Put("/templates/{id}", handlers.NewAdminUpdateTemplateHandler(templateService))
				r.Delete("/templates/{id}", handlers.NewAdminDeleteTemplateHandler(templateService))
				r.Put("/models/{id}", handlers.NewAdminUpsertModelHandler(settingsService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("%s/swagger/doc.json", cfg.PublicURL)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
