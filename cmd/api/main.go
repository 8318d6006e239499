package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/api"
	"github.com/jy02739244/Domain-AutoCheck/internal/cache"
	"github.com/jy02739244/Domain-AutoCheck/internal/conf"
	"github.com/jy02739244/Domain-AutoCheck/internal/database"
	"github.com/jy02739244/Domain-AutoCheck/internal/metrics"
	"github.com/jy02739244/Domain-AutoCheck/internal/repository"
	"github.com/jy02739244/Domain-AutoCheck/internal/service"
	"github.com/jy02739244/Domain-AutoCheck/internal/whois"
)

func main() {
	// 設定 Log 格式
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})

	// 1. Config
	cfg, err := conf.LoadConfig()
	if err != nil {
		logrus.Fatalf("Config error: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	ctx := context.Background()

	// 2. Database
	mongoClient, err := database.Connect(ctx, cfg.MongoDB)
	if err != nil {
		logrus.Fatalf("Database error: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(cfg.MongoDB.Database)

	// 3. Dependency Injection (依賴注入)
	// Repo -> Service -> Handler
	domainRepo := repository.NewMongoDomainRepo(db)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// WHOIS 快取為選用，未設定時保持 nil interface
	var whoisCache service.WhoisCache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisWhoisCache(ctx, cfg.Redis.URL, cfg.Redis.TTL)
		if err != nil {
			logrus.Fatalf("Redis error: %v", err)
		}
		defer redisCache.Close()
		whoisCache = redisCache
	}

	extraRoutes := make([]whois.ExtraRoute, 0, len(cfg.Whois.Routes))
	for _, rt := range cfg.Whois.Routes {
		extraRoutes = append(extraRoutes, whois.ExtraRoute{Suffix: rt.Suffix, Provider: rt.Provider})
	}
	whoisRouter, err := whois.NewDefaultRouter(whois.Options{
		APIKey:         cfg.Whois.APIKey,
		StructuredURL:  cfg.Whois.StructuredURL,
		EnvelopeURL:    cfg.Whois.EnvelopeURL,
		RelayURL:       cfg.Whois.RelayURL,
		RelayOriginURL: cfg.Whois.RelayOriginURL,
		Timeout:        cfg.Whois.Timeout,
		ExtraRoutes:    extraRoutes,
	})
	if err != nil {
		logrus.Fatalf("Whois router error: %v", err)
	}

	// 資料庫設定 > 平台密鑰 > 編譯預設值
	credentials := service.NewCredentialChain(
		service.CredentialSource{Name: service.SourcePlatform, BotToken: cfg.Telegram.PlatformToken, ChatID: cfg.Telegram.PlatformChat},
		service.CredentialSource{Name: service.SourceDefault, BotToken: conf.DefaultBotToken, ChatID: conf.DefaultChatID},
	)
	notifierService := service.NewNotifierService(credentials,
		service.WithTelegramAPIBase(cfg.Telegram.APIBase),
		service.WithSendInterval(cfg.Telegram.Interval),
		service.WithNotifierMetrics(appMetrics),
	)

	whoisService := service.NewWhoisService(whoisRouter, whoisCache, appMetrics, cfg.Whois.BatchLimit)
	domainService := service.NewDomainService(domainRepo, notifierService)
	cfService := service.NewCloudflareService(cfg.Cloudflare.APIToken, domainService, whoisService)
	cronService := service.NewCronService(domainRepo, notifierService, appMetrics)

	// 4. 啟動排程
	if cfg.Scheduler.Enabled {
		if err := cronService.Start(cfg.Scheduler.Schedule); err != nil {
			logrus.Fatalf("Scheduler error: %v", err)
		}
		defer func() { <-cronService.Stop().Done() }()
	}

	// 5. Gin Router Setup
	r := api.NewRouter(api.Handlers{
		Whois:      api.NewWhoisHandler(whoisService),
		Domains:    api.NewDomainHandler(domainService, cronService, cfService),
		Categories: api.NewCategoryHandler(domainService),
		Telegram:   api.NewTelegramHandler(domainRepo, notifierService),
	}, promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Forced shutdown: %v", err)
	}
}
