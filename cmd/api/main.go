package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/configs"
	httpdelivery "github.com/hrishikesh1231/hrishi-service-backend/internal/delivery/http"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/delivery/kafka"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository/postgres"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/service"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/storage"
)

// @title hrishi service backend
// @version 1.0
// @description Order intake backend: accepts customer orders with optional prescription upload and relays admin and customer notifications through a Kafka outbox.

// @host localhost:5000
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.ConnectURL(cfg.PgDSN())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("postgres migrate: %s", err)
	}
	logrus.Print("connected to postgres")

	repo := repository.NewRepository(db)

	var uploader service.Uploader
	if cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		up, err := storage.NewCloudinary(
			cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey,
			cfg.CloudinaryAPISecret,
			cfg.UploadFolder,
			cfg.MaxUploadBytes,
		)
		if err != nil {
			logrus.Fatalf("cloudinary init: %s", err)
		}
		uploader = up
		logrus.Print("cloudinary configured")
	} else {
		logrus.Warn("cloudinary credentials unset, prescription uploads disabled")
	}

	pub := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("kafka publisher ready")

	svc := service.NewService(repo, uploader, pub)

	h := httpdelivery.NewHandler(svc, cfg.MaxUploadBytes)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}
