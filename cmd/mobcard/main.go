package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/de0k/mobcard-server/internal/config"
	"github.com/de0k/mobcard-server/internal/geocode"
	"github.com/de0k/mobcard-server/internal/handler"
	"github.com/de0k/mobcard-server/internal/repo"
	"github.com/de0k/mobcard-server/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mobcard",
		Short: "mobcard backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run mobcard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(config.Load())
		},
	}
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logger.Init("", cfg.LogLevel, 0, 0, 0, true)
	logutil.GetLogger(context.Background()).Info("starting server", zap.String("addr", cfg.Addr))

	db, err := repo.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := repo.ApplyMigrations(db); err != nil {
		return err
	}

	accountRepo := repo.NewAccountRepo(db)
	skinRepo := repo.NewSkinRepo(db)
	contactRepo := repo.NewContactRepo(db)

	accountService := service.NewAccountService(accountRepo)
	skinService := service.NewSkinService(accountRepo, skinRepo)
	contactService := service.NewContactService(contactRepo)
	geocoder := geocode.NewClient(cfg.KakaoAPIKey)

	router := handler.NewRouter(handler.RouterDeps{
		Auth:     handler.NewAuthHandler(accountService),
		Skins:    handler.NewSkinHandler(skinService),
		Contacts: handler.NewContactHandler(contactService),
		Geo:      handler.NewGeoHandler(geocoder),
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
