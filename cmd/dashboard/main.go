package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GoldSentinel/internal/collector"
	"GoldSentinel/internal/config"
	"GoldSentinel/internal/dashboard"
	"GoldSentinel/internal/errtrack"
	"GoldSentinel/internal/logger"
	"GoldSentinel/internal/metrics"
	"GoldSentinel/internal/notifier"
	"GoldSentinel/internal/recorder"
	"GoldSentinel/internal/scheduler"
	"GoldSentinel/internal/server"
	"GoldSentinel/internal/snapshot"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config validation: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Env); err != nil {
		logger.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	log := logger.Get().With("component", "main")
	log.Infof("GoldSentinel starting...")

	metrics.Init()

	// Init fetcher
	var fetcher collector.Fetcher = collector.NewAPIFetcher(cfg.API.BaseURL, cfg.API.Timeout, cfg.Proxy)
	if cfg.API.RealtimeSource == "yahoo" {
		fetcher = collector.WithPriceSource(fetcher, collector.NewYahooPriceSource("", cfg.API.YahooSymbol, cfg.Proxy))
	}
	log.Infof("data source: %s (%s)", fetcher.Name(), cfg.API.BaseURL)

	store := snapshot.NewStore()
	opts := dashboard.Options{DefaultRate: cfg.Dashboard.DefaultExchangeRate}

	// Init recorder
	var rec recorder.Recorder
	var history server.PredictionHistory
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			history = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init error tracking
	var tracker errtrack.Tracker = errtrack.Noop{}
	if cfg.Sentry.DSN != "" {
		st, err := errtrack.NewSentry(cfg.Sentry.DSN, cfg.Log.Env)
		if err != nil {
			log.Warnf("init sentry failed, errors stay local: %v", err)
		} else {
			tracker = st
			defer st.Flush(2 * time.Second)
		}
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init Telegram notifier
	var tn *notifier.TelegramNotifier
	var alerts scheduler.Notifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		alerts = tn
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, fetcher, store, rec, alerts, opts)
	sched.From, sched.To = cfg.API.FromCurrency, cfg.API.ToCurrency
	sched.Tracker = tracker
	if err := sched.RegisterAll(scheduler.Specs{
		Daily:        cfg.Polling.DailyCron,
		Realtime:     cfg.Polling.RealtimeCron,
		ExchangeRate: cfg.Polling.ExchangeRateCron,
		Explanation:  cfg.Polling.ExplanationCron,
	}); err != nil {
		log.Fatalf("register cron tasks: %v", err)
	}
	sched.RunAllNow()
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Infof("telegram polling started")
	}

	srv := server.New(server.Config{
		Port:        cfg.Server.Port,
		StaticDir:   cfg.Server.StaticDir,
		Gzip:        cfg.Server.Gzip,
		DefaultUnit: cfg.DefaultUnit(),
		Options:     opts,
		History:     history,
	}, store)
	if err := srv.Run(ctx); err != nil {
		log.Errorf("server: %v", err)
	}

	log.Infof("GoldSentinel stopped")
}
