package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rohitvarpe/stitchkart-backend/api/routes"
	"github.com/rohitvarpe/stitchkart-backend/internal/addresses"
	"github.com/rohitvarpe/stitchkart-backend/internal/cart"
	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/internal/serviceability"
	"github.com/rohitvarpe/stitchkart-backend/internal/wishlist"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"github.com/rohitvarpe/stitchkart-backend/pkg/migrate"
	"github.com/rohitvarpe/stitchkart-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	codec, err := envelope.New(cfg.Crypto.Secret)
	if err != nil {
		logg.Error(context.Background(), "failed to create payload codec", err)
		os.Exit(1)
	}

	conn := dbClient.DB()

	reviewService, err := reviews.NewService(reviews.NewRepository(conn), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create review service", err)
		os.Exit(1)
	}

	mediaStore, err := reviews.NewMediaStore(cfg.Media)
	if err != nil {
		logg.Error(context.Background(), "failed to create media store", err)
		os.Exit(1)
	}

	productService, err := products.NewService(products.NewRepository(conn), reviewService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	addressRepo := addresses.NewRepository(conn)
	addressService, err := addresses.NewService(addressRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create address service", err)
		os.Exit(1)
	}

	serviceabilityService, err := serviceability.NewService(
		serviceability.NewRepository(conn), addressRepo, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create serviceability service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.NewRepository(conn), productService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.NewRepository(conn), productService)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			Codec:          codec,
			DBPinger:       dbClient,
			RedisPinger:    redisClient,
			Registry:       registry,
			Products:       productService,
			Reviews:        reviewService,
			MediaStore:     mediaStore,
			Serviceability: serviceabilityService,
			Addresses:      addressService,
			Cart:           cartService,
			Wishlist:       wishlistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
