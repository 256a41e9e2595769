package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("Could not load application configuration")
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"chat_id":       cfg.TelegramChatID,
		"poll_schedule": cfg.PollSchedule,
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, func(err error, _ telebot.Context) {
		logger.Component("telebot").WithError(err).Error("Telegram bot error")
	})
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	mainLogger.Info("Telegram bot created")

	practicumClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout, logger.Component("practicum"))
	statusService := app.NewStatusService(
		practicumClient,
		telegram.NewTelebotAdapter(bot),
		cfg.TelegramChatID,
		logger.Component("status_service"),
	)

	state := &app.PollState{Timestamp: time.Now().Unix()}
	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollSchedule, func(ctx context.Context) {
		statusService.RunCycle(ctx, state)
	}, logger.Component("scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Polling homework statuses...")
	if err := pollScheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll scheduler stopped unexpectedly")
	}
	mainLogger.Info("Application shut down gracefully.")
}
