package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/salonhub/booking-api/internal/config"
	"github.com/salonhub/booking-api/internal/email"
	"github.com/salonhub/booking-api/internal/handler"
	appointmentHandler "github.com/salonhub/booking-api/internal/handler/appointment"
	auditHandler "github.com/salonhub/booking-api/internal/handler/audit"
	authHandler "github.com/salonhub/booking-api/internal/handler/auth"
	catalogHandler "github.com/salonhub/booking-api/internal/handler/catalog"
	companyHandler "github.com/salonhub/booking-api/internal/handler/company"
	staffHandler "github.com/salonhub/booking-api/internal/handler/staff"
	"github.com/salonhub/booking-api/internal/middleware"
	"github.com/salonhub/booking-api/internal/repository/postgres"
	"github.com/salonhub/booking-api/internal/router"
	appointmentService "github.com/salonhub/booking-api/internal/service/appointment"
	auditService "github.com/salonhub/booking-api/internal/service/audit"
	authService "github.com/salonhub/booking-api/internal/service/auth"
	catalogService "github.com/salonhub/booking-api/internal/service/catalog"
	companyService "github.com/salonhub/booking-api/internal/service/company"
	eventService "github.com/salonhub/booking-api/internal/service/event"
	staffService "github.com/salonhub/booking-api/internal/service/staff"
	"github.com/salonhub/booking-api/pkg/auth"
	"github.com/salonhub/booking-api/pkg/logger"
	"github.com/salonhub/booking-api/pkg/messaging"
	redisBrokerPkg "github.com/salonhub/booking-api/pkg/messaging/redis"
	"github.com/salonhub/booking-api/pkg/metrics"
	"github.com/salonhub/booking-api/pkg/security"
	"github.com/salonhub/booking-api/pkg/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	// Infrastructure
	m := metrics.New("booking_api")
	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
		RefreshExpiry: time.Duration(cfg.JWT.RefreshExpiryHours) * time.Hour,
	})
	hasher := security.NewBcryptHasher(12)

	var emailSvc email.Service
	if cfg.SMTP.Host != "" {
		emailSvc = email.NewSMTPService(email.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		appLogger.Warn("SMTP not configured, email notifications disabled")
		emailSvc = email.NewNoopService()
	}

	// Services
	auditor := auditService.NewService(auditRepo)
	eventSvc := eventService.NewService(outboxRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher, auditor)
	companySvc := companyService.NewService(companyRepo, auditor)
	staffSvc := staffService.NewService(staffRepo, userRepo, companyRepo, eventSvc, auditor)
	catalogSvc := catalogService.NewService(serviceRepo, companyRepo, auditor)
	appointmentSvc := appointmentService.NewService(
		appointmentRepo, staffRepo, serviceRepo, companyRepo, userRepo,
		eventSvc, emailSvc, auditor, m, appLogger,
	)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc)
	companyH := companyHandler.NewHandler(companySvc)
	staffH := staffHandler.NewHandler(staffSvc)
	catalogH := catalogHandler.NewHandler(catalogSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	auditH := auditHandler.NewHandler(auditor)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(
		authMiddleware,
		authH,
		companyH,
		staffH,
		catalogH,
		appointmentH,
		auditH,
		h,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RPS),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "booking_api_http",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// In-process outbox processor; cmd/worker runs the same loop standalone.
	if cfg.Redis.URL != "" {
		broker, err := redisBroker(cfg, appLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer broker.Close()

		processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
			BatchSize:     cfg.Outbox.BatchSize,
			PollInterval:  time.Duration(cfg.Outbox.PollIntervalSeconds) * time.Second,
			RetryAttempts: cfg.Outbox.RetryAttempts,
			RetryDelay:    time.Duration(cfg.Outbox.RetryDelaySeconds) * time.Second,
		}, appLogger, m)
		go processor.Start(ctx)
	}

	auditCleanup := worker.NewAuditCleanupWorker(auditor, 90, 24*time.Hour, appLogger)
	go auditCleanup.Start(ctx)

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func redisBroker(cfg *config.Config, l *logger.Logger) (messaging.Broker, error) {
	return redisBrokerPkg.NewBroker(redisBrokerPkg.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, &l.ZL)
}
