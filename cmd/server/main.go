package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"helpize/internal/config"
	"helpize/internal/handlers/api"
	"helpize/internal/handlers/web"
	"helpize/internal/middleware"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/repositories/memory"
	mongorepo "helpize/internal/repositories/mongodb"
	"helpize/internal/services"
	"helpize/pkg/cache"
	"helpize/pkg/database"
	"helpize/pkg/logger"
	"helpize/pkg/sms"
	"helpize/pkg/storage"
	"helpize/pkg/websocket"
	"helpize/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		Caller:  cfg.App.Debug,
		Colors:  cfg.App.Debug,
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}

// stores bundles the user and alert backends with whatever must be closed
// and probed on /health.
type stores struct {
	users   interfaces.UserRepository
	alerts  interfaces.AlertRepository
	pingers map[string]api.Pinger
	closers []io.Closer
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close()
	}
}

func run(cfg *config.Config, appLogger *logger.Logger) error {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := newStores(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer backends.Close()

	uploads, err := newUploadStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	if closer, ok := uploads.(io.Closer); ok {
		defer closer.Close()
	}

	hub := websocket.NewHub(appLogger)
	go hub.Run(ctx)

	notifiers := []services.AlertNotifier{services.NewLiveFeedNotifier(hub)}
	smsNotifier, err := newSMSNotifier(ctx, cfg.SMS)
	if err != nil {
		return err
	}
	if smsNotifier != nil {
		notifiers = append(notifiers, smsNotifier)
	}

	authService := services.NewAuthService(backends.users, cfg.Security.BcryptCost, appLogger)
	alertService := services.NewAlertService(backends.alerts, appLogger, notifiers...)
	resourceService := services.NewResourceService(memory.NewResourceRepository(memory.DefaultResources()), uploads, appLogger)
	blogService := services.NewBlogService(memory.NewBlogRepository(memory.DefaultBlogPosts()))

	if cfg.Store.Seed {
		admin, password := services.DefaultUser()
		if err := authService.EnsureUser(ctx, admin, password); err != nil {
			return fmt.Errorf("failed to seed default user: %w", err)
		}
	}

	sessions := middleware.NewSessionManager(cfg.Security.SessionSecret, cfg.Security.SessionTTL, cfg.Security.SecureCookies, appLogger)

	deps := routes.Dependencies{
		Pages:  web.NewPageHandler(authService, alertService, resourceService, blogService, sessions, appLogger),
		Alerts: api.NewAlertHandler(alertService, appLogger),
		Health: api.NewHealthHandler(backends.pingers),
		LiveFeed: websocket.NewHandler(hub, websocket.HandlerConfig{
			ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
			WriteBufferSize: cfg.WebSocket.WriteBufferSize,
			PingInterval:    cfg.WebSocket.PingInterval,
			PongTimeout:     cfg.WebSocket.PongTimeout,
			AllowedOrigins:  cfg.WebSocket.AllowedOrigins,
		}),
		Sessions:       sessions,
		Logger:         appLogger,
		MaxBodySize:    cfg.Security.MaxUploadSize,
		AllowedOrigins: cfg.Security.CORSAllowedOrigins,
		TrustedProxies: cfg.Security.TrustedProxies,
	}
	if local, ok := uploads.(*storage.LocalStorage); ok {
		deps.UploadDir = local.BasePath()
		deps.UploadURL = cfg.Storage.Local.BaseURL
	}

	router, err := routes.NewRouter(deps)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.WithFields(map[string]interface{}{
			"address": server.Addr,
			"store":   cfg.Store.Driver,
			"storage": cfg.Storage.Provider,
			"sms":     cfg.SMS.Provider,
		}).Info("Starting server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-hub.Done()
	return nil
}

func newStores(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == "memory" {
		return &stores{
			users:   memory.NewUserRepository(),
			alerts:  memory.NewAlertRepository(),
			pingers: map[string]api.Pinger{},
		}, nil
	}

	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		return nil, err
	}

	backends := &stores{
		pingers: map[string]api.Pinger{"mongodb": mongoDB},
		closers: []io.Closer{mongoDB},
	}

	if err := database.NewMigrator(mongoDB.Database, appLogger).Up(ctx); err != nil {
		backends.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	var userCache mongorepo.CacheService
	if cfg.Store.CacheEnabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			backends.Close()
			return nil, err
		}
		userCache = redisCache
		backends.pingers["redis"] = redisCache
		backends.closers = append(backends.closers, redisCache)
	}

	backends.users = mongorepo.NewUserRepository(mongoDB.Database, userCache, cfg.Redis.UserCacheTTL)
	backends.alerts = mongorepo.NewAlertRepository(mongoDB.Database)
	return backends, nil
}

func newUploadStorage(ctx context.Context, cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "aws":
		return storage.NewAWSS3Storage(ctx, storage.AWSS3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			CDNDomain:       cfg.AWS.CDNDomain,
		})
	case "gcp":
		return storage.NewGCPStorage(ctx, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}

// newSMSNotifier returns nil when alerts are not texted anywhere.
func newSMSNotifier(ctx context.Context, cfg *config.SMSConfig) (services.AlertNotifier, error) {
	if cfg.ResponderNumber == "" {
		return nil, nil
	}

	var provider sms.SMSProvider
	switch cfg.Provider {
	case "twilio":
		twilio, err := sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
		if err != nil {
			return nil, err
		}
		provider = twilio
	case "aws":
		snsProvider, err := sms.NewAWSSNSProvider(ctx, sms.AWSSNSConfig{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			SenderID:        cfg.AWS.SenderID,
		})
		if err != nil {
			return nil, err
		}
		provider = snsProvider
	default:
		return nil, nil
	}

	return services.NewSMSNotifier(provider, cfg.ResponderNumber), nil
}
