package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printflow/config"
	"printflow/internal/database"
	"printflow/internal/router"
	"printflow/pkg/razorpay"
	"printflow/pkg/storage"
)

func main() {
	cfg := config.Load()
	if cfg.Database.DSN == "" {
		log.Fatalf("config: DATABASE_DSN is required")
	}
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	if cfg.Razorpay.KeySecret == "" {
		log.Printf("[Razorpay] RAZORPAY_SECRET_KEY not set; gateway calls will fail")
	}
	gateway := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)

	engine := router.Setup(cfg, db, store, gateway)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	fmt.Println("server stopped")
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.Storage.Driver {
	case "cloudinary":
		cl := cfg.Storage.Cloudinary
		return storage.NewCloudinaryStore(cl.CloudName, cl.APIKey, cl.APISecret, cl.Folder)
	case "disk":
		return storage.NewDiskStore(cfg.Storage.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
