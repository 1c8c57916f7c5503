package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/auth"
	"github.com/Domenick1991/airreserve/internal/bootstrap"
	"github.com/Domenick1991/airreserve/internal/cache"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/logger"
	"github.com/Domenick1991/airreserve/internal/migrations"
	"github.com/Domenick1991/airreserve/internal/repository"
	"github.com/Domenick1991/airreserve/internal/service/booking"
	"github.com/Domenick1991/airreserve/internal/service/coupons"
	"github.com/Domenick1991/airreserve/internal/service/favorites"
	"github.com/Domenick1991/airreserve/internal/service/flights"
	"github.com/Domenick1991/airreserve/internal/service/notifications"
	"github.com/Domenick1991/airreserve/internal/service/rewards"
	"github.com/Domenick1991/airreserve/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		lg.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		migrate(ctx, pool, lg)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.SearchCacheTTL)*time.Second)
	defer redisCache.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, lg)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		lg.Warn("kafka unavailable, events will be dropped until it recovers", zap.Error(err))
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	couponService := coupons.NewCouponService(couponRepo,
		coupons.WithLogger(lg.Named("coupons")),
		coupons.WithNotifications(producer, cfg.Kafka.NotificationsTopic),
	)
	flightService := flights.NewFlightService(flightRepo, couponService,
		flights.WithCache(redisCache),
		flights.WithLogger(lg.Named("flights")),
	)
	bookingService := booking.NewBookingService(bookingRepo,
		booking.WithCache(redisCache),
		booking.WithEvents(producer, cfg.Kafka.BookingTopic, cfg.Kafka.NotificationsTopic),
		booking.WithLogger(lg.Named("booking")),
	)
	userService := users.NewUserService(userRepo, tokens,
		users.WithBcryptCost(cfg.Auth.BcryptCost),
		users.WithLogger(lg.Named("users")),
	)

	handlers := bootstrap.Handlers{
		Auth:      api.NewAuthHandler(userService),
		Flights:   api.NewFlightHandler(flightService),
		Bookings:  api.NewBookingHandler(bookingService),
		Rewards:   api.NewRewardHandler(rewards.NewRewardService(bookingRepo)),
		Favorites: api.NewFavoriteHandler(favorites.NewFavoriteService(favoriteRepo)),
		Coupons:   api.NewCouponHandler(couponService),
		Share:     api.NewShareHandler(notifications.NewShareService(producer, cfg.Kafka.NotificationsTopic)),
	}
	router := bootstrap.NewRouter(cfg.HTTP, handlers, api.NewAuth(tokens), lg.Named("http"))

	if err := bootstrap.Run(ctx, cfg.HTTP, router, lg); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}

func migrate(ctx context.Context, pool *pgxpool.Pool, lg *zap.Logger) {
	m, err := migrations.NewMigrator(pool, lg.Named("migrations"))
	if err != nil {
		lg.Fatal("init migrator", zap.Error(err))
	}
	defer m.Close()

	if err := m.Run(ctx); err != nil {
		lg.Fatal("apply migrations", zap.Error(err))
	}
}
