package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/review-catalog/internal/events"
	"github.com/sbilibin2017/review-catalog/internal/handlers"
	"github.com/sbilibin2017/review-catalog/internal/jwt"
	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/mailer"
	"github.com/sbilibin2017/review-catalog/internal/metrics"
	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/repositories"
	"github.com/sbilibin2017/review-catalog/internal/services"
	"github.com/sbilibin2017/review-catalog/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/review-catalog/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title review-catalog API
// @version 1.0.0
// @description Collaborative catalog of creative works with reviews and comments
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		authRateLimit, authRateWindowSecond,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		authRateLimit, authRateWindowSecond,
		kafkaBrokers, kafkaTopic,
		smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom,
		jwtSecret, jwtExpSecond,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, SMTP, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	authRateLimit int64, authRateWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	smtpHost string, smtpPort int, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int,
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
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if authRateLimit, err = strconv.ParseInt(getEnv("AUTH_RATE_LIMIT", "5"), 10, 64); err != nil {
		return
	}
	if authRateWindowSecond, err = strconv.Atoi(getEnv("AUTH_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "review-catalog-events")

	// SMTP config
	smtpHost = getEnv("SMTP_HOST", "localhost")
	if smtpPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	smtpUser = getEnv("SMTP_USER", "")
	smtpPassword = getEnv("SMTP_PASSWORD", "")
	smtpFrom = getEnv("SMTP_FROM", "noreply@review-catalog.local")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, SMTP, and HTTP server.
// It applies pending migrations, sets up routes, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	authRateLimit int64, authRateWindowSecond int,
	kafkaBrokers, kafkaTopic string,
	smtpHost string, smtpPort int, smtpUser, smtpPassword, smtpFrom string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Apply pending migrations
	if err := applyMigrations(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Initialize event publisher; nil when no brokers are configured
	var publisher *events.Publisher
	if kafkaBrokers != "" {
		publisher = events.New(strings.Split(kafkaBrokers, ","), kafkaTopic)
		defer publisher.Close()
	}

	// Initialize mailer and JWT service
	smtp := mailer.New(smtpHost, smtpPort, smtpUser, smtpPassword, smtpFrom)
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryWriteRepo := repositories.NewCategoryWriteRepository(db)
	genreReadRepo := repositories.NewGenreReadRepository(db)
	genreWriteRepo := repositories.NewGenreWriteRepository(db)
	titleReadRepo := repositories.NewTitleReadRepository(db)
	titleWriteRepo := repositories.NewTitleWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, smtp)
	categoryService := services.NewCategoryService(categoryReadRepo, categoryWriteRepo)
	genreService := services.NewGenreService(genreReadRepo, genreWriteRepo)
	titleService := services.NewTitleService(titleReadRepo, titleWriteRepo, categoryReadRepo, genreReadRepo, publisher)
	reviewService := services.NewReviewService(titleReadRepo, reviewReadRepo, reviewWriteRepo, publisher)
	commentService := services.NewCommentService(reviewReadRepo, commentReadRepo, commentWriteRepo, publisher)
	userService := services.NewUserService(userReadRepo, userWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)

	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	rateLimiter := middlewares.RateLimitMiddleware(rdb, authRateLimit,
		time.Duration(authRateWindowSecond)*time.Second)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication
		r.With(rateLimiter).Post("/auth/email", handlers.NewAuthEmailHandler(authService))
		r.Post("/auth/token", handlers.NewAuthTokenHandler(authService))

		// Public reads
		r.Get("/categories", handlers.NewCategoryListHandler(categoryService))
		r.Get("/genres", handlers.NewGenreListHandler(genreService))
		r.Get("/titles", handlers.NewTitleListHandler(titleService))
		r.Get("/titles/{title_id:[0-9]+}", handlers.NewTitleGetHandler(titleService))
		r.Get("/titles/{title_id:[0-9]+}/reviews", handlers.NewReviewListHandler(reviewService))
		r.Get("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}", handlers.NewReviewGetHandler(reviewService))
		r.Get("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments", handlers.NewCommentListHandler(commentService))
		r.Get("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments/{comment_id:[0-9]+}", handlers.NewCommentGetHandler(commentService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/categories", handlers.NewCategoryCreateHandler(categoryService))
			r.Delete("/categories/{slug}", handlers.NewCategoryDeleteHandler(categoryService))

			r.Post("/genres", handlers.NewGenreCreateHandler(genreService))
			r.Delete("/genres/{slug}", handlers.NewGenreDeleteHandler(genreService))

			r.Post("/titles", handlers.NewTitleCreateHandler(titleService))
			r.Patch("/titles/{title_id:[0-9]+}", handlers.NewTitleUpdateHandler(titleService))
			r.Delete("/titles/{title_id:[0-9]+}", handlers.NewTitleDeleteHandler(titleService))

			r.Post("/titles/{title_id:[0-9]+}/reviews", handlers.NewReviewCreateHandler(reviewService))
			r.Patch("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}", handlers.NewReviewUpdateHandler(reviewService))
			r.Put("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}", handlers.NewReviewUpdateHandler(reviewService))
			r.Delete("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}", handlers.NewReviewDeleteHandler(reviewService))

			r.Post("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments", handlers.NewCommentCreateHandler(commentService))
			r.Patch("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments/{comment_id:[0-9]+}", handlers.NewCommentUpdateHandler(commentService))
			r.Put("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments/{comment_id:[0-9]+}", handlers.NewCommentUpdateHandler(commentService))
			r.Delete("/titles/{title_id:[0-9]+}/reviews/{review_id:[0-9]+}/comments/{comment_id:[0-9]+}", handlers.NewCommentDeleteHandler(commentService))

			r.Get("/users", handlers.NewUserListHandler(userService))
			r.Post("/users", handlers.NewUserCreateHandler(userService))
			r.Get("/users/me", handlers.NewUserMeGetHandler(userService))
			r.Patch("/users/me", handlers.NewUserMeUpdateHandler(userService))
			r.Get("/users/{username}", handlers.NewUserGetHandler(userService))
			r.Patch("/users/{username}", handlers.NewUserUpdateHandler(userService))
			r.Put("/users/{username}", handlers.NewUserUpdateHandler(userService))
			r.Delete("/users/{username}", handlers.NewUserDeleteHandler(userService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/healthz", handlers.NewHealthHandler(db))

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

// applyMigrations brings the schema up to date from the embedded migration
// files. An already current schema is not an error.
func applyMigrations(db *sqlx.DB) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
