package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/knmedan/showcase-backend/config"
	"github.com/knmedan/showcase-backend/internal/bootstrap"
	"github.com/knmedan/showcase-backend/internal/uploads"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Session)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	uploadStore, err := uploads.NewStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "showcase-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Uploads:     uploadStore,
		StaticDir:   "web/static",
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
