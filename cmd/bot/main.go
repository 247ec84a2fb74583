package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/astro-quiz-bot/internal/config"
	"github.com/aliskhannn/astro-quiz-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/astro-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/astro-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/astro-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/astro-quiz-bot/internal/logger"
	"github.com/aliskhannn/astro-quiz-bot/internal/repository"
	"github.com/aliskhannn/astro-quiz-bot/internal/service"
	"github.com/aliskhannn/astro-quiz-bot/internal/storage"
)

func main() {
	// A missing .env file is fine; real deployments pass env directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataset, err := repository.NewDataset(cfg.DatasetPath)
	if err != nil {
		lg.Fatal("failed to load dataset", zap.String("path", cfg.DatasetPath), zap.Error(err))
	}
	lg.Info("dataset loaded",
		zap.Int("planets", len(dataset.Planets())),
		zap.Int("signs", len(dataset.Signs())),
		zap.Int("houses", len(dataset.Houses())),
		zap.Int("aspects", len(dataset.Aspects())),
	)

	var settingsRepo service.SettingsRepository
	if cfg.DB.Enabled() {
		dsn, _ := cfg.DB.DSN()
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			lg.Fatal("failed to migrate database", zap.Error(err))
		}

		settingsRepo = pgrepo.NewSettingsRepository(pool)
		lg.Info("chat settings stored in postgres")
	} else {
		settingsRepo = repository.NewSettingsRepository()
		lg.Info("chat settings stored in memory")
	}

	sessions := storage.NewSessionStorage()

	quizService := service.NewQuizService(dataset, sessions, cfg.Quiz.DistractorCount)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Quiz.QuestionCount)
	janitor := service.NewSessionJanitor(sessions, cfg.Quiz.SessionTTL, cfg.Quiz.CleanupInterval, lg)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		janitor.Start(ctx)
	}()

	if cfg.HTTP.Addr != "" {
		h := httpapi.NewHandler(quizService, cfg.Quiz.QuestionCount, lg)
		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           httpapi.NewRouter(h, cfg.HTTP.AllowedOrigins, lg),
			ReadHeaderTimeout: 5 * time.Second,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Error("http server failed", zap.Error(err))
				stop()
			}
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				lg.Error("http server shutdown failed", zap.Error(err))
			}
		}()
	}

	if cfg.TelegramAPIToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
		if err != nil {
			lg.Fatal("failed to create telegram bot", zap.Error(err))
		}

		// Set commands.
		commands := []tgbotapi.BotCommand{
			{Command: "start", Description: "Start the bot"},
			{Command: "quiz", Description: "Start a new quiz"},
			{Command: "mode", Description: "Choose difficulty (easy or hard)"},
			{Command: "categories", Description: "Choose question categories"},
			{Command: "settings", Description: "Settings"},
			{Command: "help", Description: "Help"},
		}
		if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
			lg.Warn("failed to set bot commands", zap.Error(err))
		}

		bot.Debug = cfg.Env != "production"
		lg.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

		handler := telegram.NewHandler(bot, lg, quizService, settingsService)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				lg.Error("telegram handler failed", zap.Error(err))
			}
			bot.StopReceivingUpdates()
		}()
	}

	<-ctx.Done()
	lg.Info("shutdown signal received")

	wg.Wait()
}
