package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartqr-ordering/config"
	httpapi "smartqr-ordering/ordering-svc/internal/api/http"
	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/service"
	"smartqr-ordering/ordering-svc/internal/storage"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ordering-svc] invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := backend.NewClient(backend.Config{
		BaseURL:    cfg.BackendURL,
		AdminToken: cfg.AdminToken,
	}, &http.Client{Timeout: cfg.BackendTimeout})

	persister, closeStore := newCartPersister(ctx, cfg)
	defer closeStore()

	deps := service.SessionDeps{
		Backend:   client,
		Persister: persister,
	}
	if writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrderEventsTopic); writer != nil {
		defer writer.Close()
		deps.Publisher = storage.NewKafkaPublisher(writer)
		log.Printf("[ordering-svc] publishing order events to %s", cfg.OrderEventsTopic)
	}

	sessions := service.NewSessionRegistry(ctx, deps, service.SessionSettings{
		PollInterval:    cfg.PollInterval,
		PostSubmitDelay: cfg.PostSubmitDelay,
	})
	defer sessions.CloseAll()
	if cfg.SessionIdleTimeout > 0 {
		go sessions.RunJanitor(ctx, time.Minute, cfg.SessionIdleTimeout)
	}

	desk := service.NewDeskService(ctx, client, cfg.PollInterval)
	defer desk.StopAll()
	if cfg.SessionIdleTimeout > 0 {
		go desk.RunJanitor(ctx, time.Minute, cfg.SessionIdleTimeout)
	}

	handler := httpapi.NewHandler(sessions, desk)
	router := httpapi.NewRouter(handler, cfg.AllowedOrigins)

	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router, cfg.ShutdownTimeout); err != nil {
		log.Printf("[ordering-svc] ERROR: server stopped: %v", err)
	}
}

func newCartPersister(ctx context.Context, cfg *config.Config) (service.CartPersister, func()) {
	switch cfg.CartStore {
	case config.CartStoreRedis:
		client := config.MustInitRedis()
		log.Printf("[ordering-svc] carts stored in redis, ttl %s", cfg.CartTTL)
		return storage.NewRedisCartStore(client, cfg.CartTTL), func() { client.Close() }

	case config.CartStorePostgres:
		db := config.MustInitPostgres()
		store := storage.NewPostgresCartStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("[ordering-svc] failed to prepare carts table: %v", err)
		}
		if cfg.CartTTL > 0 {
			go purgeStaleCarts(ctx, store, cfg.CartTTL)
		}
		log.Println("[ordering-svc] carts stored in postgres")
		return store, func() { db.Close() }

	default:
		log.Println("[ordering-svc] carts stored in memory")
		return storage.NewMemoryCartStore(), func() {}
	}
}

func purgeStaleCarts(ctx context.Context, store *storage.PostgresCartStore, ttl time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := store.PurgeStale(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.Printf("[ordering-svc] WARNING: failed to purge stale carts: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("[ordering-svc] purged %d stale carts", purged)
			}
		}
	}
}
