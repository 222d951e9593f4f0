package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "roster/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"roster/internal/auth"
	"roster/internal/cache"
	"roster/internal/config"
	"roster/internal/db"
	"roster/internal/handler"
	"roster/internal/logs"
	"roster/internal/mail"
	"roster/internal/model"
	"roster/internal/notify"
	"roster/internal/repository"
	"roster/internal/router"
	"roster/internal/service"
	"roster/internal/worker"
)

const (
	shutdownTimeout     = 15 * time.Second
	tokenPurgeInterval  = time.Hour
	tokenPurgeQueryTime = 30 * time.Second
)

// @title Roster API
// @version 1.0
// @description Personnel roster administration: users, organization hierarchy, shifts, password reset and push notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logs.New(logs.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()

	// Drop tables if RESET_DB is set
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatalf("reset database: %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log)
	defer cacheClient.Close()

	pool := worker.New(cfg.WorkerCount, cfg.WorkerQueue, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	resetTokenRepo := repository.NewResetTokenRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)
	notificationRepo := repository.New[model.Notification](gormDB)
	leaveRepo := repository.New[model.Leave](gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Delivery channels fall back to logging when not configured
	var sender notify.Sender = notify.LogSender{Log: log}
	if cfg.PushEnabled() {
		sender = notify.NewWebPushSender(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubject)
	} else {
		log.Warn("VAPID keys not configured, push notifications are only logged")
	}
	var mailer mail.Mailer = mail.LogMailer{Log: log}
	if cfg.MailEnabled() {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:        cfg.MailHost,
			Port:        cfg.MailPort,
			Username:    cfg.MailUsername,
			Password:    cfg.MailPassword,
			FromName:    cfg.MailFromName,
			FromAddress: cfg.MailFromAddress,
			Timeout:     cfg.DeliveryTimeout,
		})
	} else {
		log.Warn("MAIL_HOST not configured, reset emails are only logged")
	}
	dispatcher := notify.NewDispatcher(subscriptionRepo, sender, pool, cfg.DeliveryTimeout, log)

	// Initialize services
	validate := router.NewValidator()
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	accountService := service.NewAccountService(userRepo, leaveRepo, cacheClient)
	resetService := service.NewPasswordResetService(userRepo, resetTokenRepo, mailer, pool, cfg.FrontendURL, cfg.DeliveryTimeout, log)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService, resetService),
		User:         handler.NewUserHandler(accountService),
		Notification: handler.NewNotificationHandler(notificationService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, cfg.VAPIDPublicKey),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"database": handler.PingFunc(sqlDB.PingContext),
			"redis":    cacheClient,
		}),
		Headquarters:  resource[model.Headquarters](gormDB, validate),
		Zone:          resource[model.Zone](gormDB, validate, "headquarters_id"),
		Dependency:    resource[model.Dependency](gormDB, validate, "zone_id"),
		Shift:         resource[model.Shift](gormDB, validate, "dependency_id"),
		WorkRegime:    resource[model.WorkRegime](gormDB, validate),
		Guard:         resource[model.Guard](gormDB, validate, "user_id"),
		Leave:         handler.NewResourceHandler(service.NewResourceService(leaveRepo, validate), "user_id"),
		UniformItem:   resource[model.UniformItem](gormDB, validate, "user_id"),
		Duty:          resource[model.Duty](gormDB, validate),
		Vehicle:       resource[model.Vehicle](gormDB, validate, "dependency_id"),
		VehicleRepair: resource[model.VehicleService](gormDB, validate, "vehicle_id"),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	router.Register(e, cfg, log, jwtService, tokenStore, handlers)

	go purgeExpiredTokens(ctx, resetTokenRepo, log)

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("worker pool did not drain before deadline")
	}
}

// resource builds the CRUD handler for one catalog model.
func resource[T any](gormDB *gorm.DB, v service.Validator, filters ...string) *handler.ResourceHandler[T] {
	return handler.NewResourceHandler(service.NewResourceService(repository.New[T](gormDB), v), filters...)
}

// purgeExpiredTokens removes stale password reset tokens until ctx ends.
func purgeExpiredTokens(ctx context.Context, tokens repository.ResetTokenRepository, log logrus.FieldLogger) {
	ticker := time.NewTicker(tokenPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			qctx, cancel := context.WithTimeout(ctx, tokenPurgeQueryTime)
			n, err := tokens.DeleteExpired(qctx, time.Now())
			cancel()
			if err != nil {
				log.WithError(err).Warn("purge expired reset tokens")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("purged expired reset tokens")
			}
		}
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
