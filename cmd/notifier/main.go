package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/configs"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/delivery/kafka"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/notify"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository/cache"
	"github.com/hrishikesh1231/hrishi-service-backend/internal/repository/postgres"
)

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
	logrus.Print("connected to postgres")

	repo := repository.NewRepository(db)

	tokenCache := cache.NewCache(cache.WithTTL(time.Duration(cfg.TokenCacheTTLSeconds) * time.Second))
	defer tokenCache.Close()
	tokens := cache.NewTokenCache(repo.Tokens, tokenCache)

	dispatcher := &notify.Dispatcher{}

	if cfg.FirebaseServiceAccount != "" {
		push, err := notify.NewFirebasePush(ctx, cfg.FirebaseServiceAccount, tokens)
		if err != nil {
			logrus.Fatalf("firebase init: %s", err)
		}
		dispatcher.Push = push
		logrus.Print("firebase push configured")
	} else {
		logrus.Warn("FIREBASE_SERVICE_ACCOUNT unset, admin push disabled")
	}

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		chat, err := notify.NewTelegramAlert(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.AdminPanelURL)
		if err != nil {
			logrus.Fatalf("telegram init: %s", err)
		}
		dispatcher.Chat = chat
		logrus.Print("telegram alerts configured")
	} else {
		logrus.Warn("telegram credentials unset, admin chat alerts disabled")
	}

	if cfg.WhatsAppToken != "" && cfg.WhatsAppPhoneNumberID != "" {
		dispatcher.Customer = &notify.WhatsAppClient{
			Token:         cfg.WhatsAppToken,
			PhoneNumberID: cfg.WhatsAppPhoneNumberID,
		}
		logrus.Print("whatsapp messaging configured")
	} else {
		logrus.Warn("whatsapp credentials unset, customer messaging disabled")
	}

	consumer := kafka.NewConsumer(kafka.Config{
		Brokers:    cfg.KafkaBrokersSlice(),
		GroupID:    cfg.KafkaGroupID,
		Topic:      cfg.KafkaTopic,
		DLQ:        cfg.KafkaDLQ,
		MaxRetries: 5,
	}, dispatcher)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Subscribe(ctx); err != nil {
			logrus.Errorf("consumer stopped: %v", err)
			cancel()
		}
	}()
	logrus.Print("kafka subscription started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}
	cancel()

	if err := consumer.Close(); err != nil {
		logrus.Errorf("consumer close: %s", err)
	}

	wg.Wait()
	logrus.Print("notifier stopped")
}
