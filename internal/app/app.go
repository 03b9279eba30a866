package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/cli"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/config"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/notification"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/repository"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/scheduler"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg       *config.Config
	log       logger.Logger
	menu      *cli.CLI
	scheduler *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TourismMS",
		cfg.Logger.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	accountRepo, err := repository.New(a.cfg.Storage.AccountsFile)
	if err != nil {
		return fmt.Errorf("open account store: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	accountService := service.NewAccountService(accountRepo, a.log)

	accounts, err := accountService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	a.log.Info("account store loaded",
		logger.String("file", a.cfg.Storage.AccountsFile),
		logger.Int("accounts", len(accounts)),
	)

	bookingService := service.NewBookingService(accountRepo, notifier, a.log)
	sessionService := service.NewSessionService(a.cfg.Session.IdleTimeout, a.log)

	a.scheduler = scheduler.New(
		sessionService,
		a.cfg.Session.JanitorInterval,
		a.log,
	)

	a.menu = cli.New(
		accountService,
		bookingService,
		sessionService,
		os.Stdin,
		os.Stdout,
		a.log,
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.menu.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("menu loop: %w", err)
		}
	}

	a.log.Info("app stopped")

	return nil
}
