package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airreserve/api"
	"github.com/Domenick1991/airreserve/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const swaggerFile = "reservations.swagger.json"

type Handlers struct {
	Auth      *api.AuthHandler
	Flights   *api.FlightHandler
	Bookings  *api.BookingHandler
	Rewards   *api.RewardHandler
	Favorites *api.FavoriteHandler
	Coupons   *api.CouponHandler
	Share     *api.ShareHandler
}

// NewRouter mounts every handler under /api/v1 and, when swaggerDir is set,
// the OpenAPI document with its UI at /docs.
func NewRouter(cfg config.HTTPConfig, h Handlers, auth *api.Auth, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	h.Auth.Register(v1.Group("/auth"))
	h.Flights.Register(v1.Group("/flights"), auth)
	h.Bookings.Register(v1.Group("/bookings"), auth)
	h.Rewards.Register(v1.Group("/me"), auth)
	h.Favorites.Register(v1.Group("/favorites"), auth)
	h.Coupons.Register(v1.Group("/coupons"), auth)
	h.Share.Register(v1.Group("/trips"), auth)

	if cfg.SwaggerDir != "" {
		r.Static("/swagger", cfg.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/"+swaggerFile))))
	}

	return r
}

// Run serves handler until ctx is canceled or the server fails.
func Run(ctx context.Context, cfg config.HTTPConfig, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
		defer cancel()
		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
