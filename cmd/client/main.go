package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/config"
	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/ops"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/internal/views"
	"github.com/mentorhub/mentorhub-client/pkg/httpclient"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
	"github.com/mentorhub/mentorhub-client/pkg/profiling"
	"github.com/mentorhub/mentorhub-client/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.App.Env,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting MentorHub client",
		zap.String("environment", cfg.App.Env),
		zap.String("api_base_url", cfg.API.BaseURL))

	// Tracing is optional: without an exporter endpoint the tracer stays a
	// noop and spans cost nothing.
	if cfg.Observability.ExporterEndpoint != "" {
		tracerShutdown, err := tracing.InitTracer(
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.App.Env,
			cfg.Observability.ExporterEndpoint,
		)
		if err != nil {
			logger.Warn("Tracing disabled", zap.Error(err))
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
					logger.Warn("Tracer shutdown failed", zap.Error(shutdownErr))
				}
			}()
		}
	}

	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.App.Env,
		)
		if err != nil {
			logger.Warn("Profiling disabled", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	// The ops server comes up before the rest of the wiring so the probe
	// reports unavailable until startup completes.
	var ready atomic.Bool
	var opsServer *ops.Server
	if cfg.Ops.Enabled {
		opsServer = ops.NewServer(cfg.Ops, ready.Load)
		opsServer.Start()
	}

	store, err := session.NewStore(cfg.App.StateDir)
	if err != nil {
		logger.Fatal("Failed to initialize session store", zap.Error(err))
	}

	httpClient := httpclient.NewRateLimitedClient(
		httpclient.NewStandardClientWithTimeout(time.Duration(cfg.API.RequestTimeoutSeconds)*time.Second),
		cfg.API.RateLimitRPS,
		cfg.API.RateLimitBurst,
	)

	core := api.NewClient(cfg.API.BaseURL, httpClient, store)
	authClient := api.NewAuthClient(core)
	profileClient := api.NewProfileClient(core)
	mentorClient := api.NewMentorClient(core)
	chatClient := api.NewChatClient(core)

	chatCfg := controllers.ChatSessionConfig{
		PollInterval:     time.Duration(cfg.Chat.PollIntervalSeconds) * time.Second,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	}

	sh := newShell(shellDeps{
		store:             store,
		auth:              authClient,
		profile:           profileClient,
		mentors:           mentorClient,
		chats:             chatClient,
		chatCfg:           chatCfg,
		debounce:          time.Duration(cfg.Search.DebounceMillis) * time.Millisecond,
		verifyDelay:       time.Duration(cfg.App.VerifyRedirectSeconds) * time.Second,
		scrollTolerancePx: cfg.Chat.ScrollTolerancePx,
	})
	ready.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Shutting down")
		cancel()
		sh.Interrupt()
	}()

	sh.Run(ctx)

	if opsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Ops server shutdown failed", zap.Error(err))
		}
	}

	logger.Info("Client exited")
}

// shellDeps carries everything the interactive shell needs. Assembled once
// in main, never mutated.
type shellDeps struct {
	store             *session.Store
	auth              *api.AuthClient
	profile           *api.ProfileClient
	mentors           *api.MentorClient
	chats             *api.ChatClient
	chatCfg           controllers.ChatSessionConfig
	debounce          time.Duration
	verifyDelay       time.Duration
	scrollTolerancePx int
}

var _ views.Navigator = (*shell)(nil)
var _ views.ErrorPresenter = (*shell)(nil)
