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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/iati-rates/docs"
	"github.com/sbilibin2017/iati-rates/internal/events"
	"github.com/sbilibin2017/iati-rates/internal/facades"
	"github.com/sbilibin2017/iati-rates/internal/handlers"
	"github.com/sbilibin2017/iati-rates/internal/jwt"
	"github.com/sbilibin2017/iati-rates/internal/logger"
	"github.com/sbilibin2017/iati-rates/internal/middlewares"
	"github.com/sbilibin2017/iati-rates/internal/migrations"
	"github.com/sbilibin2017/iati-rates/internal/models"
	"github.com/sbilibin2017/iati-rates/internal/repositories"
	"github.com/sbilibin2017/iati-rates/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// options are the command line flags.
type options struct {
	configPath   string
	importOnly   bool
	tokenSubject string
}

// config is the service configuration, read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisEnabled      bool
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	EpochRefresh      time.Duration

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	FeedURL     string
	FeedTimeout time.Duration
	FeedRetry   time.Duration

	JWTSecretKey string
	JWTExp       time.Duration
	JWTIssuer    string

	RateLimit string
}

// @title iati-rates API
// @version 1.0.0
// @description Exchange rate store and USD/EUR conversion for IATI reported amounts
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	opts := parseFlags()

	cfg, err := parseConfig(opts.configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if opts.tokenSubject != "" {
		token, err := issueToken(cfg, opts.tokenSubject)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	if err := run(context.Background(), cfg, opts.importOnly); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags.
func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "c", "config.env", "Path to configuration file")
	flag.BoolVar(&opts.importOnly, "import", false, "Import the rates feed once and exit")
	flag.StringVar(&opts.tokenSubject, "issue-token", "", "Print an import token for the given subject and exit")
	flag.Parse()
	return opts
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, feed, JWT and rate limit configuration.
// Variables already set in the environment win over the file.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.SetDefault("APP_HOST", "localhost")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_LOG_LEVEL", "info")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "user")
	v.SetDefault("POSTGRES_PASSWORD", "password")
	v.SetDefault("POSTGRES_DB", "database")
	v.SetDefault("POSTGRES_MAX_OPEN_CONNS", 16)
	v.SetDefault("POSTGRES_MAX_IDLE_CONNS", 8)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("RATE_EPOCH_REFRESH_SECOND", 5)

	v.SetDefault("KAFKA_ENABLED", false)
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_TOPIC", events.RatesImportedTopic)
	v.SetDefault("KAFKA_GROUP_ID", "iati-rates")

	v.SetDefault("RATES_FEED_URL", facades.DefaultIMFRatesURL)
	v.SetDefault("RATES_FEED_TIMEOUT_SECOND", 60)
	v.SetDefault("RATES_FEED_RETRY_SECOND", 120)

	v.SetDefault("JWT_SECRET_KEY", "my_super_secret_key")
	v.SetDefault("JWT_EXP_SECOND", 3600)
	v.SetDefault("JWT_ISSUER", "iati-rates")

	v.SetDefault("RATE_LIMIT", "100-M")

	v.AutomaticEnv()

	cfg := config{
		AppHost:  v.GetString("APP_HOST"),
		AppPort:  v.GetString("APP_PORT"),
		LogLevel: v.GetString("APP_LOG_LEVEL"),

		PGHost:         v.GetString("POSTGRES_HOST"),
		PGPort:         v.GetInt("POSTGRES_PORT"),
		PGUser:         v.GetString("POSTGRES_USER"),
		PGPassword:     v.GetString("POSTGRES_PASSWORD"),
		PGDB:           v.GetString("POSTGRES_DB"),
		PGMaxOpenConns: v.GetInt("POSTGRES_MAX_OPEN_CONNS"),
		PGMaxIdleConns: v.GetInt("POSTGRES_MAX_IDLE_CONNS"),

		RedisEnabled:      v.GetBool("REDIS_ENABLED"),
		RedisHost:         v.GetString("REDIS_HOST"),
		RedisPort:         v.GetInt("REDIS_PORT"),
		RedisDB:           v.GetInt("REDIS_DB"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisPoolSize:     v.GetInt("REDIS_POOL_SIZE"),
		RedisMinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
		EpochRefresh:      time.Duration(v.GetInt("RATE_EPOCH_REFRESH_SECOND")) * time.Second,

		KafkaEnabled: v.GetBool("KAFKA_ENABLED"),
		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		KafkaGroupID: v.GetString("KAFKA_GROUP_ID"),

		FeedURL:     v.GetString("RATES_FEED_URL"),
		FeedTimeout: time.Duration(v.GetInt("RATES_FEED_TIMEOUT_SECOND")) * time.Second,
		FeedRetry:   time.Duration(v.GetInt("RATES_FEED_RETRY_SECOND")) * time.Second,

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),
		JWTExp:       time.Duration(v.GetInt("JWT_EXP_SECOND")) * time.Second,
		JWTIssuer:    v.GetString("JWT_ISSUER"),

		RateLimit: v.GetString("RATE_LIMIT"),
	}

	if cfg.PGPort <= 0 || cfg.RedisPort <= 0 {
		return config{}, errors.New("ports must be positive")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return config{}, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return config{}, fmt.Errorf("RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newTokener(cfg config) *jwt.JWT {
	return jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithIssuer(cfg.JWTIssuer),
	)
}

// issueToken signs an import token for operators and schedulers.
func issueToken(cfg config, subject string) (string, error) {
	return newTokener(cfg).Generate(context.Background(), subject)
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
// With importOnly it imports the rates feed once and returns.
func run(ctx context.Context, cfg config, importOnly bool) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(db.DB); err != nil {
		return err
	}

	// Initialize repositories
	rateReadRepo := repositories.NewExchangeRateReadRepository(db)
	rateWriteRepo := repositories.NewExchangeRateWriteRepository(db)

	generation := services.DailyGeneration(time.Now)
	importOpts := []services.ImportOption{
		services.WithFeed(facades.NewIMFRatesFacade(
			&http.Client{Timeout: cfg.FeedTimeout},
			facades.WithURL(cfg.FeedURL),
			facades.WithRetryFor(cfg.FeedRetry),
		)),
	}

	// Connect to Redis
	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		epochRepo := repositories.NewRateEpochRepository(rdb)
		generation = services.EpochGeneration(time.Now, epochRepo, cfg.EpochRefresh)
		importOpts = append(importOpts, services.WithEpochBumper(epochRepo))
	}

	// Connect to Kafka
	var listener *events.KafkaListener
	if cfg.KafkaEnabled {
		publisher := events.NewKafkaPublisher(events.NewKafkaWriter(events.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}))
		defer publisher.Close()
		importOpts = append(importOpts, services.WithPublisher(publisher))

		if !importOnly {
			// each replica has its own group so that every replica sees every import
			listener = events.NewKafkaListener(events.NewKafkaReader(events.KafkaConfig{
				Brokers: cfg.KafkaBrokers,
				Topic:   cfg.KafkaTopic,
				GroupID: cfg.KafkaGroupID + "-" + uuid.NewString(),
			}))
			defer listener.Close()
		}
	}

	// Initialize services
	conversionService := services.NewConversionService(rateReadRepo, services.WithGeneration(generation))
	importService := services.NewRateImportService(rateWriteRepo, conversionService, importOpts...)

	if importOnly {
		added, err := importService.ImportFromFeed(ctx)
		if err != nil {
			return err
		}
		logger.Log.Infow("rates feed imported", "added", added)
		return nil
	}

	if err := conversionService.Warm(ctx); err != nil {
		return err
	}

	if listener != nil {
		go func() {
			err := listener.Listen(ctx, func(ctx context.Context, event models.RatesImported) error {
				conversionService.Invalidate()
				return nil
			})
			if err != nil {
				logger.Log.Errorw("rates imported listener stopped", "error", err)
			}
		}()
	}

	// Rate limiting
	var limiterStore limiter.Store
	if rdb != nil {
		limiterStore, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: "iati-rates:limiter"})
		if err != nil {
			return fmt.Errorf("create rate limit store: %w", err)
		}
	}
	ipLimiter, err := middlewares.NewIPLimiter(cfg.RateLimit, limiterStore)
	if err != nil {
		return err
	}

	// Initialize handlers
	latestHandler := handlers.NewGetLatestRateDateHandler(rateReadRepo)
	seriesHandler := handlers.NewGetRateSeriesHandler(rateReadRepo)
	nearestHandler := handlers.NewGetNearestRateHandler(conversionService)
	convertHandler := handlers.NewConvertHandler(conversionService, validator.New())
	importHandler := handlers.NewImportRatesHandler(importService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RateLimitMiddleware(ipLimiter))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterGetLatestRateDateHandler(r, latestHandler)
		handlers.RegisterGetNearestRateHandler(r, nearestHandler)
		handlers.RegisterGetRateSeriesHandler(r, seriesHandler)
		handlers.RegisterConvertHandler(r, convertHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(newTokener(cfg)))
			handlers.RegisterImportRatesHandler(r, importHandler)
		})
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
