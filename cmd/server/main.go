package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ETFSentinel/internal/collector"
	"ETFSentinel/internal/config"
	"ETFSentinel/internal/scheduler"
	"ETFSentinel/internal/server"
	"ETFSentinel/internal/symbols"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ETFSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init quote providers
	var (
		fetcher  collector.Fetcher
		metadata collector.MetadataFetcher
	)
	if cfg.DataSource.Provider == "mock" {
		mock := &collector.MockFetcher{}
		fetcher, metadata = mock, mock
	} else {
		yf := collector.NewYahooFetcher(cfg.Proxy, cfg.DataSource.RequestTimeout)
		fetcher = yf
		metadata = collector.NewYahooMetadata(yf.Client)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, metadata)
	col.Workers = cfg.Fetch.Workers
	col.MaxRetries = cfg.Fetch.MaxRetries
	col.BaseBackoff = cfg.Fetch.BaseBackoff
	col.ResultPause = cfg.Fetch.ResultPause

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init symbol source
	var src symbols.Source = symbols.NewStaticSource()
	if cfg.Symbols.Mode == config.SymbolModeScrape {
		scraper := symbols.NewScrapeSource(cfg.Symbols.URL, cfg.Proxy, cfg.Symbols.Timeout)
		scraper.Limit = cfg.Symbols.Limit
		src = scraper
		if cfg.Symbols.RefreshCron != "" {
			cached := symbols.NewCachedSource(scraper)
			sched := scheduler.NewScheduler(ctx, cached)
			if err := sched.RegisterRefresh(cfg.Symbols.RefreshCron); err != nil {
				log.Fatalf("[FATAL] register cron tasks: %v", err)
			}
			sched.Start()
			defer sched.Stop()
			go sched.RefreshNow()
			src = cached
		}
	}
	log.Printf("[INFO] symbol source: %s", src.Name())

	printBanner(cfg)

	srv := server.New(cfg.Addr(), col, src, cfg.Fetch.MaxRetries)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
		if err := <-errCh; err != nil {
			log.Printf("[ERROR] http server: %v", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Printf("[ERROR] http server: %v", err)
		}
	}

	cancel()
	log.Println("[INFO] ETFSentinel stopped")
}

func printBanner(cfg *config.Config) {
	log.Println("[INFO] ============================================================")
	log.Println("[INFO] ETF Data API Server")
	log.Printf("[INFO] Data Sources: %s", server.SourceLabel)
	log.Printf("[INFO] Server starting on port %d", cfg.Server.Port)
	log.Println("[INFO] API Endpoints:")
	log.Println("[INFO]   - GET /api/etfs          - Fetch all ETF data")
	log.Println("[INFO]   - GET /api/etf/{symbol}  - Fetch single ETF data")
	log.Println("[INFO]   - GET /api/health        - Health check")
	log.Println("[INFO] ============================================================")
}
