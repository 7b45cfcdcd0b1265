package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/app/controllers"
	"github.com/hubzz/preview-api/internal/app/services"
	"github.com/hubzz/preview-api/internal/config"
	httpPlatform "github.com/hubzz/preview-api/internal/platform/http"
	"github.com/hubzz/preview-api/internal/platform/hubzz"
	"github.com/hubzz/preview-api/internal/schema"
	"github.com/hubzz/preview-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger initialization error: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	fixtures, err := hubzz.LoadFixtures()
	if err != nil {
		zlog.Fatal("fixture load error", zap.Error(err))
	}

	client := hubzz.NewClient(hubzz.Config{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		// This process is the server side of the preview client; it may
		// attach the secret header. Browser bundles never get the key.
		AttachKey: true,
		Fixtures:  fixtures,
		Schema:    schema.New(),
		Logger:    zlog.Named("hubzz"),
	})

	selector := services.NewSourceSelector(cfg.UseMock)

	eventCtrl := controllers.NewEventController(client, selector, zlog.Named("events"))
	groupCtrl := controllers.NewGroupController(client, selector, zlog.Named("groups"))
	userCtrl := controllers.NewUserController(client, selector, zlog.Named("users"))
	stubCtrl := controllers.NewStubController(client, selector, zlog.Named("stubs"))

	router := httpPlatform.NewRouter(httpPlatform.RouterConfig{
		EventCtrl:    eventCtrl,
		GroupCtrl:    groupCtrl,
		UserCtrl:     userCtrl,
		StubCtrl:     stubCtrl,
		Logger:       zlog.Named("http"),
		Env:          cfg.Env,
		AllowOrigins: cfg.CORSAllowOrigins,
		RateLimitRPS: cfg.RateLimitRPS,
	})

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: router}
	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	zlog.Info("shutting down")
	_ = srv.Shutdown(context.Background())
}
