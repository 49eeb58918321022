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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-hotel-booking/docs"
	"github.com/sbilibin2017/gw-hotel-booking/internal/authz"
	"github.com/sbilibin2017/gw-hotel-booking/internal/handlers"
	"github.com/sbilibin2017/gw-hotel-booking/internal/jwt"
	"github.com/sbilibin2017/gw-hotel-booking/internal/logger"
	"github.com/sbilibin2017/gw-hotel-booking/internal/metrics"
	"github.com/sbilibin2017/gw-hotel-booking/internal/middlewares"
	"github.com/sbilibin2017/gw-hotel-booking/internal/repositories"
	"github.com/sbilibin2017/gw-hotel-booking/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-hotel-booking API
// @version 1.0.0
// @description Hotel booking service: users, hotels and room bookings
// @host localhost:8080
// @BasePath /api
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
		redisPoolSize, redisMinIdleConns, hotelsCacheExpSecond,
		kafkaBrokers, kafkaBookingTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, hotelsCacheExpSecond,
		kafkaBrokers, kafkaBookingTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, hotelsCacheExpSecond int,
	kafkaBrokers []string, kafkaBookingTopic string,
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
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if hotelsCacheExpSecond, err = strconv.Atoi(getEnv("HOTELS_CACHE_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, empty brokers disable event publishing
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaBookingTopic = getEnv("KAFKA_BOOKING_TOPIC", "bookings")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, hotelsCacheExpSecond int,
	kafkaBrokers []string, kafkaBookingTopic string,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for booking events
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaBookingTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing booking events to %s on %v", kafkaBookingTopic, kafkaBrokers)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, booking events are not published")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	registry := prometheus.NewRegistry()
	metrics.RegisterDBStats(registry, db.DB)

	r := newRouter(db, rdb, kafkaWriter, tokens, registry,
		time.Duration(hotelsCacheExpSecond)*time.Second,
		time.Duration(jwtExpSecond)*time.Second,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	tokens *jwt.JWT,
	registry *prometheus.Registry,
	hotelsCacheExp, sessionExp time.Duration,
	swaggerURL string,
) http.Handler {
	txGetter := middlewares.GetTxFromContext

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	hotelReadRepo := repositories.NewHotelReadRepository(db)
	hotelWriteRepo := repositories.NewHotelWriteRepository(db, txGetter)
	bookingReadRepo := repositories.NewBookingReadRepository(db)
	bookingWriteRepo := repositories.NewBookingWriteRepository(db, txGetter)
	hotelCacheRepo := repositories.NewHotelCacheRepository(rdb, hotelsCacheExp)
	sessionRepo := repositories.NewSessionRepository(rdb, sessionExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, tokens)
	hotelService := services.NewHotelService(hotelReadRepo, hotelWriteRepo, hotelCacheRepo)
	bookingService := services.NewBookingService(bookingReadRepo, bookingWriteRepo, hotelReadRepo, kafkaWriter,
		services.WithCommitHook(middlewares.AfterCommit))
	policy := authz.NewPolicy(tokens, authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(metrics.NewMetrics(registry)))

	tx := middlewares.TxMiddleware(db)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(authService, sessionRepo))
		r.With(tx).Post("/users", handlers.NewRegisterHandler(authService, sessionRepo))
		r.With(tx).Post("/change_password", handlers.NewChangePasswordHandler(policy, authService))
		r.Get("/get_token", handlers.NewGetTokenHandler(sessionRepo))
		r.Post("/logout", handlers.NewLogoutHandler(sessionRepo))

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", handlers.NewListBookingsHandler(policy, bookingService))
			r.With(tx).Post("/", handlers.NewCreateBookingHandler(policy, bookingService))
			r.Get("/{id}", handlers.NewGetBookingHandler(policy, bookingService))
			r.With(tx).Delete("/{id}", handlers.NewDeleteBookingHandler(policy, bookingService))
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", handlers.NewListHotelsHandler(hotelService))
			r.With(tx).Post("/", handlers.NewCreateHotelHandler(policy, hotelService))
			r.Get("/{id}", handlers.NewGetHotelHandler(hotelService))
		})
	})

	r.Handle("/metrics", metrics.Handler(registry))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
