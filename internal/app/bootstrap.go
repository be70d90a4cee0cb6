package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/shopify_cod/config"
	"github.com/Gunvolt24/shopify_cod/internal/domain"
	"github.com/Gunvolt24/shopify_cod/internal/kafka"
	"github.com/Gunvolt24/shopify_cod/internal/ports"
	ratemem "github.com/Gunvolt24/shopify_cod/internal/ratelimit/memory"
	"github.com/Gunvolt24/shopify_cod/internal/shopify"
	rest "github.com/Gunvolt24/shopify_cod/internal/transport/http"
	"github.com/Gunvolt24/shopify_cod/internal/usecase"
	"github.com/Gunvolt24/shopify_cod/pkg/logger"
	"github.com/Gunvolt24/shopify_cod/pkg/metrics"
	"github.com/Gunvolt24/shopify_cod/pkg/telemetry"
	"github.com/Gunvolt24/shopify_cod/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger         // логгер
	HTTPServer      *http.Server         // HTTP-сервер
	Events          ports.EventPublisher // издатель событий (может быть nil)
	gracefulTimeout time.Duration        // время ожидания завершения HTTP-сервера
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
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

	// Лимитер с фоновой чисткой истёкших окон.
	store := ratemem.NewStore(cfg.RateLimit.Window)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	store.StartJanitor(janitorCtx, cfg.RateLimit.EvictEvery)

	// Издатель событий заказов; пустой список брокеров отключает публикацию.
	var events ports.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		events = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		logg.Infof(ctx, "kafka events enabled brokers=%v topic=%s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Сборка конвейера приёма заявок.
	shop := domain.ShopContext{Domain: cfg.Shopify.ShopDomain, AccessToken: cfg.Shopify.AccessToken}
	if !shop.Complete() {
		logg.Warnf(ctx, "shop config incomplete; submissions will be rejected with ServerMisconfigured")
	}
	client := shopify.NewClient(cfg.Shopify.APIVersion, cfg.Shopify.Timeout, logg)
	validator := validate.NewRequestValidator()
	service := usecase.NewSubmitService(store, validator, client, events, logg, shop)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg)
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
		Events:          events,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if events != nil {
			if err := events.Close(); err != nil {
				logg.Warnf(ctx, "kafka producer close error: %v", err)
			}
		}
		stopJanitor()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
