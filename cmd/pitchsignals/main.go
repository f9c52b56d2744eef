// PitchSignals - Match intelligence and content synthesis engine.
// Ingests fixtures, derives reproducible betting angles, verifies past
// picks, and publishes channel content.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/api"
	"github.com/pitchsignals/pitchsignals/internal/caption"
	"github.com/pitchsignals/pitchsignals/internal/config"
	"github.com/pitchsignals/pitchsignals/internal/facebook"
	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/livescore"
	"github.com/pitchsignals/pitchsignals/internal/pipeline"
	"github.com/pitchsignals/pitchsignals/internal/scheduler"
	"github.com/pitchsignals/pitchsignals/internal/telegram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("PitchSignals - Starting match intelligence engine")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Ledger repository. An unreachable database fails open to an
	// empty in-memory ledger so the engine keeps publishing.
	var repo ledger.Repository
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	mongoRepo, err := ledger.NewMongoRepository(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("MongoDB unavailable, using in-memory ledger for this process")
		repo = ledger.NewMemoryRepository()
	} else {
		repo = mongoRepo
		defer mongoRepo.Close(ctx)
	}

	tracker := ledger.NewTracker(repo, cfg.LedgerRetentionDays)

	// Channel senders
	var channel pipeline.ChannelSender
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		sender, err := telegram.NewSender(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Telegram sender")
		} else {
			channel = sender
		}
	}

	var page pipeline.PageSender
	if cfg.FacebookPageID != "" && cfg.FacebookAccessToken != "" {
		page = facebook.NewClient(cfg.FacebookPageID, cfg.FacebookAccessToken)
		log.Info().Str("page", cfg.FacebookPageID).Msg("Facebook client initialized")
	}

	var captions pipeline.CaptionGenerator
	if cfg.OpenAIAPIKey != "" {
		captions = caption.NewClient(caption.Config{
			APIKey:   cfg.OpenAIAPIKey,
			Endpoint: cfg.OpenAIEndpoint,
			Model:    cfg.OpenAIModel,
		})
		log.Info().Str("model", cfg.OpenAIModel).Msg("Caption client initialized")
	}

	// Pipeline runner. A fresh fetcher per run resets the request
	// budget with it.
	runner := pipeline.NewRunner(
		func() pipeline.Fetcher {
			return livescore.NewClient(cfg.ProviderAPIKey, cfg.ProviderHost, cfg.FetchBudget)
		},
		tracker,
		channel,
		page,
		captions,
		pipeline.Config{
			DigestSize:   cfg.DigestSize,
			RecordLimit:  cfg.RecordLimit,
			CardImageURL: cfg.CardImageURL,
		},
	)
	log.Info().Msg("Pipeline runner initialized")

	// Scheduler
	sched := scheduler.NewScheduler(runner, scheduler.Config{
		DigestHourUTC:  cfg.DigestHourUTC,
		SettleInterval: cfg.SettleInterval,
		LiveInterval:   cfg.LiveInterval,
	})

	// API server
	apiServer := api.NewServer(repo, runner, sched, cfg.HTTPAddr)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := apiServer.Start(); err != nil {
			log.Error().Err(err).Msg("API server error")
		}
	}()

	sched.Start()

	log.Info().
		Str("api", cfg.HTTPAddr).
		Int("digest_hour_utc", cfg.DigestHourUTC).
		Msg("PitchSignals engine running")

	// Wait for shutdown signal
	<-sigChan
	log.Info().Msg("Shutdown signal received")

	sched.Stop()
	apiServer.Shutdown(ctx)

	log.Info().Msg("PitchSignals engine stopped")
}
