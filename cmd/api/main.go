package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ayurlanka/admin-api/internal/catalog"
	"github.com/ayurlanka/admin-api/internal/classify"
	"github.com/ayurlanka/admin-api/internal/config"
	"github.com/ayurlanka/admin-api/internal/httpx"
	kafkax "github.com/ayurlanka/admin-api/internal/kafka"
	"github.com/ayurlanka/admin-api/internal/postgres"
	"github.com/ayurlanka/admin-api/internal/redisx"
	"github.com/ayurlanka/admin-api/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Artefak klasifikasi: gagal load = fatal, bukan degradasi per request.
	clf, err := classify.Load(cfg.VectorizerPath, cfg.ModelPath)
	if err != nil {
		log.Fatalf("classifier: %v", err)
	}

	// Store
	var st store.Store
	var rdb *redis.Client
	switch cfg.StoreDriver {
	case "redis":
		rdb = redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		st = &redisx.Store{RDB: rdb}
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		ps := &postgres.Store{DB: db}
		if err := ps.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		st = ps
	case "memory":
		st = store.NewMemory()
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	// Allocator: snapshot (default) atau counter atomic di redis
	var alloc catalog.Allocator = &catalog.SnapshotAllocator{Store: st}
	if cfg.IDAllocator == "counter" {
		if rdb == nil {
			log.Fatalf("ID_ALLOCATOR=counter requires STORE_DRIVER=redis")
		}
		alloc = &redisx.CounterAllocator{RDB: rdb}
	}

	// Kafka producer opsional (event order.created)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, catalog.TopicOrderCreated, 1024)
		prod.Start(ctx)
	}

	router := httpx.NewRouter()
	h := &httpx.Handler{
		Products:      &catalog.Products{Store: st, Path: store.PathProducts, Alloc: alloc},
		Practitioners: &catalog.Practitioners{Store: st, Path: store.PathPractitioners, Alloc: alloc},
		Orders:        &catalog.Orders{Store: st},
		Suppliers:     &catalog.Suppliers{Store: st},
		Classifier:    clf,
		Producer:      prod,
		Store:         st,
		Service:       cfg.ServiceName,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close()      // tutup inbox -> flush & close writer
		prod.WaitClosed() // drain
	}
}
