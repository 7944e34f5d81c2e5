package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	authapp "github.com/heystay/booking-api/application/auth"
	"github.com/heystay/booking-api/application/resource"
	"github.com/heystay/booking-api/cmd/config"
	redisclient "github.com/heystay/booking-api/cmd/redis"
	_ "github.com/heystay/booking-api/docs"
	amenityRepo "github.com/heystay/booking-api/repository/amenity"
	bookingRepo "github.com/heystay/booking-api/repository/booking"
	hostRepo "github.com/heystay/booking-api/repository/host"
	propertyRepo "github.com/heystay/booking-api/repository/property"
	redisRepo "github.com/heystay/booking-api/repository/redis"
	reviewRepo "github.com/heystay/booking-api/repository/review"
	userRepo "github.com/heystay/booking-api/repository/user"
	"github.com/heystay/booking-api/thirdparty/rabbitmq"
	"github.com/heystay/booking-api/transport"
	"github.com/heystay/booking-api/utils/logger"
	"github.com/heystay/booking-api/utils/telemetry"
	"github.com/jmoiron/sqlx"
	"github.com/jub0bs/fcors"
	"go.uber.org/zap"
)

// @title BOOKING API
// @version 1.0
// @description Vacation-rental booking API Documentation
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client when configured; the cache degrades to a
	// no-op without it.
	if cfg.RedisEnabled() {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Telemetry sink: error events go to RabbitMQ when configured.
	sink := telemetry.NewNoopSink()
	if cfg.RabbitMQEnabled() {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		sink = telemetry.NewAMQPSink(publisher, "booking-api")
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	HostRepo := hostRepo.NewHostRepository(db)
	PropertyRepo := propertyRepo.NewPropertyRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	AmenityRepo := amenityRepo.NewAmenityRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo)
	ttl := cfg.Cache.TTL

	resources := []transport.Resource{
		{Prefix: "/users", App: resource.NewUserApp(UserRepo, ReviewRepo, BookingRepo, RedisRepo, ttl, sink)},
		{Prefix: "/hosts", App: resource.NewHostApp(HostRepo, PropertyRepo, RedisRepo, ttl, sink)},
		{Prefix: "/properties", App: resource.NewPropertyApp(PropertyRepo, HostRepo, RedisRepo, ttl, sink)},
		{Prefix: "/bookings", App: resource.NewBookingApp(BookingRepo, UserRepo, PropertyRepo, RedisRepo, ttl, sink)},
		{Prefix: "/reviews", App: resource.NewReviewApp(ReviewRepo, UserRepo, PropertyRepo, RedisRepo, ttl, sink)},
		{Prefix: "/amenities", App: resource.NewAmenityApp(AmenityRepo, RedisRepo, ttl, sink)},
	}

	httpTransport := transport.NewTransport(AuthApp, resources, sink)

	cors, err := fcors.AllowAccess(
		fcors.FromAnyOrigin(),
		fcors.WithMethods(
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		),
		fcors.WithRequestHeaders("Authorization"),
	)
	if err != nil {
		logger.Fatal("err build cors", zap.Error(err))
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      cors(httpTransport),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
