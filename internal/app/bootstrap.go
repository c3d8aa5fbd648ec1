package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/csvgate/config"
	cachemem "github.com/Gunvolt24/csvgate/internal/cache/memory"
	"github.com/Gunvolt24/csvgate/internal/kafka"
	"github.com/Gunvolt24/csvgate/internal/ports"
	rest "github.com/Gunvolt24/csvgate/internal/transport/http"
	"github.com/Gunvolt24/csvgate/internal/usecase"
	"github.com/Gunvolt24/csvgate/pkg/logger"
	"github.com/Gunvolt24/csvgate/pkg/metrics"
	"github.com/Gunvolt24/csvgate/pkg/preflight"
	"github.com/Gunvolt24/csvgate/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранный сервис предварительной проверки и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger           // логгер
	HTTPServer      *http.Server           // HTTP-сервер
	Publisher       ports.OutcomePublisher // публикатор событий проверки
	gracefulTimeout time.Duration          // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newPublisher — Kafka-публикатор при включённой конфигурации, иначе Discard.
func newPublisher(ctx context.Context, cfg *config.Kafka, log ports.Logger) ports.OutcomePublisher {
	if !cfg.Enabled {
		log.Infof(ctx, "kafka publisher disabled, outcome events are discarded")
		return kafka.Discard{}
	}
	log.Infof(ctx, "kafka publisher enabled brokers=%v topic=%s", cfg.Brokers, cfg.Topic)
	return kafka.NewPublisher(&kafka.PublisherConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		RequiredAcks: cfg.RequiredAcks,
		WriteTimeout: cfg.WriteTimeout,
	}, log)
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	outcomeCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	publisher := newPublisher(ctx, &cfg.Kafka, logg)
	service := usecase.NewPreflightService(preflight.NewValidator(), outcomeCache, publisher, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(service, logg, cfg.HTTP.HandlerTimeout, cfg.HTTP.MaxUploadBytes())
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Publisher:       publisher,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := publisher.Close(); err != nil {
			logg.Warnf(ctx, "outcome publisher close error: %v", err)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки сервера и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "http server failed: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Публикатор закрывается после сервера: in-flight запросы успевают отправить события.
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "outcome publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
