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
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-coach/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-coach/internal/adapters/llm"
	"github.com/comitanigiacomo/kanso-coach/internal/adapters/providers"
	"github.com/comitanigiacomo/kanso-coach/internal/config"
	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
	"github.com/comitanigiacomo/kanso-coach/internal/core/services"
	"github.com/comitanigiacomo/kanso-coach/internal/core/workers"
	"github.com/comitanigiacomo/kanso-coach/internal/logger"
)

type app struct {
	router    *gin.Engine
	dashboard *services.DashboardService
	// warmer is nil when DAILY_WARMUP_CRON is empty.
	warmer *workers.DailyWarmer
	redis  *redis.Client
}

func newApp(cfg *config.Config, log *zap.Logger, startTime time.Time) (*app, error) {
	now := func() time.Time { return time.Now().In(cfg.Location) }

	var store domain.DailyStore = cache.NewMemoryDailyStore()
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(cache.RedisOptions{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("redis unavailable, daily cache stays in memory", zap.Error(err))
		} else {
			rdb = client
			store = cache.NewRedisDailyStore(rdb, log)
			log.Info("daily cache backed by redis", zap.String("host", cfg.Redis.Host))
		}
	}

	httpClient := providers.NewHTTPClient(cfg.HTTPTimeout)
	p := cfg.Providers

	checkins := services.NewCheckinService(cfg.HabitVariant, now, log)
	reports := services.NewReportService(
		llm.NewResponsesClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, httpClient, log),
		log,
	)
	dashboard := services.NewDashboardService(
		services.DashboardProviders{
			Weather:     providers.NewWeatherClient(p.WeatherAPIKey, p.WeatherBaseURL, httpClient, log),
			Dog:         providers.NewDogClient(p.DogBaseURL, httpClient, log),
			Inspiration: providers.NewInspirationClient(p.NASAAPIKey, p.NASABaseURL, p.ZenQuotesBaseURL, httpClient, log),
			Book:        providers.NewBookClient(p.OpenLibraryBaseURL, p.CoversBaseURL, httpClient, log),
		},
		services.NewDailyCache(store, now, log),
		checkins,
		reports,
		now,
		log,
	)

	var warmer *workers.DailyWarmer
	if cfg.DailyWarmupCron != "" {
		w, err := workers.NewDailyWarmer(dashboard, cfg.DailyWarmupCron, cfg.Location, log)
		if err != nil {
			if rdb != nil {
				_ = rdb.Close()
			}
			return nil, err
		}
		warmer = w
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DashboardHandler:   adapterHTTP.NewDashboardHandler(dashboard, log),
		CheckinHandler:     adapterHTTP.NewCheckinHandler(checkins, log),
		Redis:              rdb,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Log:                log,
		StartTime:          startTime,
	})

	return &app{
		router:    router,
		dashboard: dashboard,
		warmer:    warmer,
		redis:     rdb,
	}, nil
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Critical: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Critical: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	gin.SetMode(gin.ReleaseMode)

	a, err := newApp(cfg, log, startTime)
	if err != nil {
		log.Fatal("failed to build application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.warmer != nil {
		a.warmer.Start(ctx)
		a.warmer.Trigger()
	}

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout(cfg.HTTPTimeout),
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("kanso coach listening",
			zap.String("addr", srv.Addr),
			zap.String("timezone", cfg.Location.String()),
			zap.String("habit_variant", string(cfg.HabitVariant)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}

	log.Info("server stopped gracefully")
}

// reportChainCalls is the worst case of one report: weather, dog, APOD, quote,
// book search, book work and the coach report, one after another.
const reportChainCalls = 7

func writeTimeout(httpTimeout time.Duration) time.Duration {
	return reportChainCalls*httpTimeout + 5*time.Second
}
