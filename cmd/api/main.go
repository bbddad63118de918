// @title Cocoon API
// @description API for pregnancy-tracking app "Cocoon": checklists, pregnancy calendar and appointments
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/limbo/cocoon/internal/api"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/internal/service"
	"github.com/limbo/cocoon/migrations"
	"github.com/limbo/cocoon/pkg/cleanup"
	"github.com/limbo/cocoon/pkg/config"
	jwtservice "github.com/limbo/cocoon/pkg/jwt_service"
	"github.com/limbo/cocoon/pkg/logger"
	"golang.org/x/sync/errgroup"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.New(cfg.Log)
	defer cleanup.CleanUp()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrate(ctx, &cfg.Postgres); err != nil {
		return err
	}
	pool, err := repository.NewPool(ctx, &cfg.Postgres, cfg.Postgres.MaxConns)
	if err != nil {
		return err
	}

	usersRepo := repository.NewUsersRepo(pool)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(usersRepo),
		ChecklistService:    service.NewChecklistService(repository.NewChecklistsRepo(pool), repository.NewTxManager(pool), nil),
		PregnancyService:    service.NewPregnancyService(usersRepo, nil),
		AppointmentsService: service.NewAppointmentsService(repository.NewAppointmentsRepo(pool), nil),
		JwtService:          jwtservice.New(cfg.JWT.Secret, cfg.JWT.TokenTTL),
	})
	serv.MountEndpoints()

	srv := &http.Server{
		Addr:         cfg.API.Address,
		Handler:      serv,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
		IdleTimeout:  cfg.API.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", slog.String("address", cfg.API.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func migrate(ctx context.Context, cfg *config.PostgresConfig) error {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	return migrations.Up(ctx, db)
}
