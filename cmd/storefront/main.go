package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Brandbong/Vedham/internal/bus"
	"github.com/Brandbong/Vedham/internal/cache"
	"github.com/Brandbong/Vedham/internal/cart"
	"github.com/Brandbong/Vedham/internal/catalog"
	"github.com/Brandbong/Vedham/internal/checkout"
	storehttp "github.com/Brandbong/Vedham/internal/http"
)

func main() {
	// Configuration
	httpAddr := getEnv("HTTP_ADDR", ":8080")
	catalogDBPath := getEnv("CATALOG_DB_PATH", "data/catalog.db")
	catalogMigrations := getEnv("CATALOG_MIGRATIONS_PATH", "internal/catalog/migrations")
	cartDBPath := getEnv("CART_DB_PATH", "data/cart.db")
	cartMigrations := getEnv("CART_MIGRATIONS_PATH", "internal/cart/migrations")
	upiPayee := checkout.UPIPayee{
		Address: getEnv("UPI_PAYEE_ADDRESS", "vijaya2015.ve@oksbi"),
		Name:    getEnv("UPI_PAYEE_NAME", "Vedham Eldix"),
	}
	clearCartOnDispatch := getEnv("CLEAR_CART_ON_DISPATCH", "false") == "true"

	ctx := context.Background()

	// Catalog: migrate, seed and load once; read-only afterwards
	catalogRepo, err := catalog.NewRepository(catalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalogRepo.Close()
	if err := catalogRepo.RunMigrations(catalogMigrations); err != nil {
		log.Fatalf("Failed to migrate catalog: %v", err)
	}
	cat, err := catalog.Load(ctx, catalogRepo)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded with %d products from %s", len(cat.All()), catalogDBPath)

	// Cart persistence
	cartRepo, err := cart.NewSQLiteRepository(cartDBPath)
	if err != nil {
		log.Fatalf("Failed to open cart database: %v", err)
	}
	defer cartRepo.Close()
	if err := cartRepo.RunMigrations(cartMigrations); err != nil {
		log.Fatalf("Failed to migrate cart database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	changeBus := bus.New()
	store := cart.NewStore(cartRepo, cat, cache.NewRedisCache(redisClient), changeBus)

	// The dispatch instruction itself is the redirect the HTTP layer sends;
	// server-side there is nothing to open, only to record.
	navigator := checkout.NavigatorFunc(func(_ context.Context, link string) error {
		log.Printf("Dispatching payment link: %s", link)
		return nil
	})

	handoff := checkout.NewHandoff()
	checkoutService := checkout.NewService(store, navigator, upiPayee, handoff, clearCartOnDispatch)

	router := storehttp.NewRouter(
		storehttp.NewProductHandler(cat),
		storehttp.NewCartHandler(store),
		storehttp.NewCheckoutHandler(checkoutService, handoff),
		storehttp.NewEventsHandler(changeBus),
	)

	server := &http.Server{
		Addr:    httpAddr,
		Handler: otelhttp.NewHandler(router, "storefront"),
	}

	go func() {
		log.Printf("Storefront listening on %s", httpAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Storefront stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
