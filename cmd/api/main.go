package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-triage/internal/adapters/storage/jsonfile"
	mem "pet-triage/internal/adapters/storage/memory"
	pg "pet-triage/internal/adapters/storage/postgres"
	rds "pet-triage/internal/adapters/storage/redis"
	"pet-triage/internal/adapters/transport/telegram"
	"pet-triage/internal/domain/cases"
	"pet-triage/internal/domain/intake"
	"pet-triage/internal/domain/pets"
	"pet-triage/internal/domain/referral"
	"pet-triage/internal/platform/config"
	"pet-triage/internal/platform/logger"
	"pet-triage/internal/router"
)

// @title Pet Triage API
// @version 1.0
// @description Intake conversacional y triage por reglas para perros y gatos.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pet-triage: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	petRepo, caseRepo, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	contacts := referral.New(cfg.Referral.Phone, cfg.Referral.Chat)
	petsSvc := pets.NewService(petRepo)
	casesSvc := cases.NewService(caseRepo)
	eng := intake.NewEngine(intake.Options{
		Sessions: sessions,
		Pets:     petsSvc,
		Cases:    casesSvc,
		Contacts: contacts,
		Logger:   log,
	})

	srv := &http.Server{
		Addr: ":" + cfg.HTTP.Port,
		Handler: router.NewRouter(router.Options{
			Engine:   eng,
			Pets:     petsSvc,
			Cases:    casesSvc,
			Contacts: contacts,
			Logger:   log,
		}),
		ReadTimeout:  config.GetDuration(cfg.HTTP.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.HTTP.WriteTimeout),
	}

	// el bot se arma antes de levantar el server
	bot, err := newTelegramBot(cfg.Telegram, eng, log)
	if err != nil {
		return err
	}

	errs := make(chan error, 2)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver, "sessions": cfg.Sessions.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("server error: %w", err)
		}
	}()

	botDone := make(chan struct{})
	if bot != nil {
		go func() {
			defer close(botDone)
			if err := bot.Run(ctx); err != nil {
				errs <- fmt.Errorf("telegram: %w", err)
			}
		}()
	} else {
		close(botDone)
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
	case err := <-errs:
		log.Error("fatal error", map[string]any{"error": err})
		stop()
		shutdown(srv, log)
		<-botDone
		return err
	}

	shutdown(srv, log)
	<-botDone
	return nil
}

// newTelegramBot devuelve nil si telegram está deshabilitado.
func newTelegramBot(cfg config.TelegramConfig, conv telegram.Conversation, log logger.Logger) (*telegram.Bot, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	client, err := telegram.NewClient(cfg.APIBaseURL, cfg.Token, time.Duration(cfg.PollTimeout)*time.Second)
	if err != nil {
		return nil, err
	}
	return telegram.NewBot(client, conv, log), nil
}

func shutdown(srv *http.Server, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("server shutdown", map[string]any{"error": err})
	}
}

func openStorage(ctx context.Context, cfg *config.Config, log logger.Logger) (pets.Repository, cases.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := pg.Open(cfg.Storage.Postgres.DSN, pg.PoolOptions{
			MaxOpenConns: cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Storage.Postgres.MaxIdleConns,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		if cfg.Storage.Postgres.Migrate {
			if err := pg.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return nil, nil, nil, err
			}
		}
		return pg.NewPetsRepo(db), pg.NewCasesRepo(db), func() { _ = db.Close() }, nil

	case config.StorageFile:
		petRepo, err := jsonfile.NewPetsRepo(cfg.Storage.File.BaseDir)
		if err != nil {
			return nil, nil, nil, err
		}
		caseRepo, err := jsonfile.NewCasesRepo(cfg.Storage.File.BaseDir)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("json file storage", map[string]any{"base_dir": cfg.Storage.File.BaseDir})
		return petRepo, caseRepo, func() {}, nil

	default:
		log.Warn("in-memory storage: records are lost on restart", nil)
		return mem.NewPetRepo(), mem.NewCaseRepo(), func() {}, nil
	}
}

func openSessions(ctx context.Context, cfg *config.Config, log logger.Logger) (intake.SessionStore, func(), error) {
	if cfg.Sessions.Driver != config.SessionsRedis {
		return mem.NewSessionStore(), func() {}, nil
	}

	store := rds.NewSessionStore(rds.NewClient(rds.Options{
		Address:  cfg.Sessions.Redis.Address,
		Password: cfg.Sessions.Redis.Password,
		DB:       cfg.Sessions.Redis.DB,
	}), cfg.Sessions.SessionIdleTTL())

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	log.Info("redis session store", map[string]any{"address": cfg.Sessions.Redis.Address, "idle_ttl": cfg.Sessions.SessionIdleTTL().String()})
	return store, func() { _ = store.Close() }, nil
}
