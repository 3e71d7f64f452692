package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/appcontext"
	"github.com/RoyceAzure/lab/santoral/internal/config"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/rs/zerolog"
)

func newLogger(cf *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cf.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	switch constants.ENV(cf.Env) {
	case constants.Debug, constants.Dev:
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "santoral-gateway").Logger()
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	cf := config.GetConfig()
	logger := newLogger(cf)

	app, err := appcontext.NewApplicationContext(cf, &logger)
	if err != nil {
		log.Fatal(err)
		return
	}

	// 設定服務器參數
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cf.ServerPort),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("application shutdown error")
		}

		shutdownCompleted <- struct{}{}
	}()

	// 啟動服務
	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutdownCompleted
	logger.Info().Msg("closed completed")
}
