package main

import (
	"log/slog"
	"os"
	"sync"

	"github.com/golang-cz/devslog"
	_ "github.com/lib/pq"

	"github.com/kartiksharma/portfolio/internal/auth"
	"github.com/kartiksharma/portfolio/internal/config"
	"github.com/kartiksharma/portfolio/internal/mailer"
	"github.com/kartiksharma/portfolio/internal/store"
	"github.com/kartiksharma/portfolio/models"
)

// notifier is the contact-form email collaborator. Send reports success
// but never fails the request that triggered it.
type notifier interface {
	Send(message models.ContactMessageInput) bool
}

type application struct {
	config   config.Config
	store    store.Store
	sessions *auth.Sessions
	mailer   notifier
	logger   *slog.Logger
	wg       sync.WaitGroup
}

func main() {
	logger := configLogger()
	logger.Info("Starting application...")

	cfg := config.Load(logger)

	st, err := store.Open(cfg, logger)
	if err != nil {
		logger.Error("Errors opening storage backend", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := application{
		config:   cfg,
		store:    st,
		sessions: auth.NewSessions(),
		mailer:   mailer.New(cfg.GmailUser, cfg.GmailAppPassword, logger),
		logger:   logger,
	}

	app.startKeepAlive()

	if err := app.serve(); err != nil {
		logger.Error("Errors starting server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	return slog.New(handler)
}
