package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/kart-storefront/internal/cache"
	"github.com/Lixing-Zhang/kart-storefront/internal/config"
	"github.com/Lixing-Zhang/kart-storefront/internal/handlers"
	"github.com/Lixing-Zhang/kart-storefront/internal/repository"
	"github.com/Lixing-Zhang/kart-storefront/internal/service"
	"github.com/Lixing-Zhang/kart-storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	productRepo, err := loadCatalog(cfg.Catalog)
	if err != nil {
		log.Error("failed to load catalog", "file", cfg.Catalog.File, "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "file", cfg.Catalog.File, "products", productRepo.Len())

	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(productRepo)

	var closers []io.Closer
	if cfg.Cache.Enabled() {
		resultCache, err := newResultCache(cfg.Cache, productRepo, log)
		if err != nil {
			log.Error("failed to set up result cache", "error", err)
			os.Exit(1)
		}
		productService.WithCache(resultCache)
		closers = append(closers, resultCache)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:         log,
		Health:         handlers.NewHealthHandler(log, productRepo.Len()),
		Products:       handlers.NewProductHandler(productService, log),
		Orders:         handlers.NewOrderHandler(orderService, log),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: 60 * time.Second,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case <-quit:
		log.Info("shutting down server...")
	case err := <-serverErr:
		log.Error("server failed to start", "error", err)
		exitCode = 1
	}

	if err := shutdown(srv, time.Duration(cfg.Server.ShutdownTimeout)*time.Second, closers...); err != nil {
		log.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	log.Info("server stopped gracefully")
}

// shutdown stops the HTTP server and then releases the given resources. The
// resources are closed even when the server does not stop in time.
func shutdown(srv *http.Server, timeout time.Duration, closers ...io.Closer) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errs := []error{srv.Shutdown(ctx)}
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func loadCatalog(cfg config.CatalogConfig) (*repository.InMemoryProductRepository, error) {
	if cfg.File == "" {
		return repository.NewInMemoryProductRepository(), nil
	}
	return repository.NewRepositoryFromFile(cfg.File)
}

// newResultCache connects the shared result cache. The namespace is derived
// from the release and the catalog contents.
func newResultCache(cfg config.CacheConfig, repo *repository.InMemoryProductRepository, log *slog.Logger) (*cache.RedisResultCache, error) {
	products, err := repo.GetAll(context.Background())
	if err != nil {
		return nil, err
	}
	namespace, err := cache.Namespace(handlers.Version, products)
	if err != nil {
		return nil, err
	}

	resultCache := cache.NewRedisResultCache(cache.Options{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		TTL:       time.Duration(cfg.TTL) * time.Second,
		Namespace: namespace,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := resultCache.Ping(ctx); err != nil {
		// lookups fall back to the local pipeline
		log.Warn("result cache unreachable", "addr", cfg.RedisAddr, "error", err)
	}

	log.Info("result cache enabled", "addr", cfg.RedisAddr, "namespace", namespace, "ttl_seconds", cfg.TTL)
	return resultCache, nil
}
