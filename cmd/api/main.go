package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gearstore/internal/catalog"
	"gearstore/internal/config"
	"gearstore/internal/db"
	"gearstore/internal/httpserver"
	"gearstore/internal/logger"
	"gearstore/internal/metrics"
	"gearstore/internal/migrate"
	cartrepo "gearstore/internal/repository/cart"
	cartsvc "gearstore/internal/service/cart"
	"gearstore/internal/storefront"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	cfg, err := config.Load()
	if err != nil {
		logg.Fatal(ctx, "load config", err)
	}
	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	products := catalog.Default()
	if cfg.CatalogCSV != "" {
		products, err = catalog.LoadFile(cfg.CatalogCSV)
		if err != nil {
			logg.Fatal(ctx, "load catalog", err)
		}
	}
	logg.Event(ctx).Int("products", products.Len()).Msg("catalog loaded")

	repo, closeRepo, err := openRepository(ctx, cfg, logg)
	if err != nil {
		logg.Fatal(ctx, "open cart storage", err)
	}
	defer closeRepo()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	cartMetrics := metrics.NewCartMetrics(reg)

	repo = cartrepo.Instrument(repo, cfg.CartBackend, cartMetrics)
	cartService, err := cartsvc.New(products, repo, cartMetrics, logg)
	if err != nil {
		logg.Fatal(ctx, "init cart service", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logg, httpserver.Deps{
		Catalog: products,
		CartSvc: cartService,
		Storage: repo,
		Content: storefront.DefaultContent(),
		Session: httpserver.SessionConfig{
			CookieName: cfg.CookieName,
			Secure:     cfg.CookieSecure,
			MaxAge:     cfg.CartTTL,
		},
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     metrics.NewHTTPMetrics(reg),
		Gatherer:    reg,
	})
	if err != nil {
		logg.Fatal(ctx, "init server", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logg.Event(ctx).Str("addr", cfg.HTTPAddr).Str("backend", cfg.CartBackend).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logg.Event(ctx).Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logg.Error(ctx, "server error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "graceful shutdown failed", err)
	} else {
		logg.Info(ctx, "server stopped")
	}
}

// openRepository connects the configured cart backend. The returned func
// releases its connections.
func openRepository(ctx context.Context, cfg config.Config, logg *logger.Logger) (cartrepo.Repository, func(), error) {
	switch cfg.CartBackend {
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return cartrepo.NewPostgres(pool), pool.Close, nil
	case config.BackendRedis:
		client, err := db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return cartrepo.NewRedis(client, cfg.CartTTL), func() {
			if err := client.Close(); err != nil {
				logg.Warn(ctx, "close redis", err)
			}
		}, nil
	default:
		logg.Warn(ctx, "using in-memory cart storage; carts are lost on restart", nil)
		return cartrepo.NewMemory(), func() {}, nil
	}
}
