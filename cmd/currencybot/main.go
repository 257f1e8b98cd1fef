package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Iultina/currency-converter-bot/internal/bot"
	"github.com/Iultina/currency-converter-bot/internal/config"
	"github.com/Iultina/currency-converter-bot/internal/rate"
	"github.com/Iultina/currency-converter-bot/internal/repository"
	"github.com/Iultina/currency-converter-bot/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	rateClient := rate.NewClient(cfg.RateURL, cfg.RateCurrency)
	rateSvc := service.NewRateService(rateClient, historyRepo)

	telegramBot, err := bot.New(cfg.TelegramToken, userRepo, rateSvc, &cfg)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	broadcastSvc := service.NewBroadcastService(userRepo, rateClient, telegramBot, cfg.RateCurrency)

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.BroadcastTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := broadcastSvc.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("broadcast: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule broadcast: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Currency converter bot started.")
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
