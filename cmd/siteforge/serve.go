package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/siteforge"
	sfanthropic "github.com/fwojciec/siteforge/anthropic"
	"github.com/fwojciec/siteforge/firecrawl"
	"github.com/fwojciec/siteforge/fs"
	"github.com/fwojciec/siteforge/gemini"
	"github.com/fwojciec/siteforge/goquery"
	sfhttp "github.com/fwojciec/siteforge/http"
	"github.com/fwojciec/siteforge/htmltomarkdown"
	"github.com/fwojciec/siteforge/mem"
	sfopenai "github.com/fwojciec/siteforge/openai"
	"github.com/fwojciec/siteforge/pipeline"
	"github.com/fwojciec/siteforge/readability"
	"github.com/fwojciec/siteforge/rod"
	"github.com/fwojciec/siteforge/scrape"
	sfslog "github.com/fwojciec/siteforge/slog"
	"github.com/fwojciec/siteforge/sqlite"
	"github.com/fwojciec/siteforge/trafilatura"
	"github.com/fwojciec/siteforge/zip"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// shutdownTimeout bounds graceful shutdown after a signal.
const shutdownTimeout = 30 * time.Second

// Run starts the HTTP server and blocks until a signal arrives.
func (c *ServeCmd) Run(deps *Dependencies) error {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config := siteforge.NewConfigService(siteforge.ConfigFromEnv())

	gateway, err := buildGateway(deps.Ctx, config)
	if err != nil {
		return err
	}
	generator := pipeline.New(sfslog.NewLoggingGenerator(gateway, logger), config, logger)

	var fetcher siteforge.Fetcher
	if c.RenderJS {
		fetcher, err = rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --render-js")
			return fmt.Errorf("failed to start browser: %w", err)
		}
	} else {
		fetcher = sfhttp.NewFetcher()
	}
	defer fetcher.Close()

	orchestrator := &scrape.Orchestrator{
		Sitemaps:  sfhttp.NewSitemapService(nil),
		Fetcher:   sfslog.NewLoggingFetcher(fetcher, logger),
		Extractor: trafilatura.NewExtractor(),
		Backup:    readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		HTML:      goquery.NewExtractor(),
		Logger:    logger,
	}
	if apiKey := os.Getenv("FIRECRAWL_API_KEY"); apiKey != "" {
		client := firecrawl.NewClient(apiKey)
		orchestrator.Mapper = client
		orchestrator.Pages = client
	} else {
		logger.Warn("FIRECRAWL_API_KEY not set, scraping without the provider cascade")
	}

	projects, closeDB, err := c.openProjects(deps.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	publisher, err := fs.NewPublisher(deps.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open site storage at %q: %w", deps.DataDir, err)
	}

	srv := sfhttp.NewServer()
	srv.Addr = c.Addr
	srv.Logger = logger
	srv.Scraper = sfslog.NewLoggingScraper(orchestrator, logger)
	srv.Generator = generator
	srv.Gateway = gateway
	srv.Config = config
	srv.Projects = projects
	srv.Publisher = publisher
	srv.Exporter = zip.NewExporter()

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Open() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Close(shutdownCtx)
}

// openProjects returns the configured project store and a close func.
func (c *ServeCmd) openProjects(dbPath string) (siteforge.ProjectService, func(), error) {
	if c.Mem {
		return mem.NewProjectService(), func() {}, nil
	}

	db := sqlite.NewDB(dbPath)
	if err := db.Open(); err != nil {
		return nil, nil, fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	return sqlite.NewProjectService(db), func() { _ = db.Close() }, nil
}

// buildGateway registers a generator for every provider with a credential.
// The gateway itself rejects calls to providers without one.
func buildGateway(ctx context.Context, config *siteforge.ConfigService) (*siteforge.Gateway, error) {
	gateway := siteforge.NewGateway(config)
	cfg := config.Get()

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		gateway.Register(siteforge.ProviderGemini, gemini.NewGenerator(client))
	}

	if cfg.AnthropicAPIKey != "" {
		client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
		gateway.Register(siteforge.ProviderAnthropic, sfanthropic.NewGenerator(client))
	}

	if cfg.OpenAIAPIKey != "" {
		client := openai.NewClient(cfg.OpenAIAPIKey)
		gateway.Register(siteforge.ProviderOpenAI, sfopenai.NewGenerator(client))
	}

	return gateway, nil
}
