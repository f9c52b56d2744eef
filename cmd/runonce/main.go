// runonce executes a single pipeline pass and exits. Intended for cron
// or CI environments where the engine is not run as a daemon.
package main

import (
	"context"
	"os"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/caption"
	"github.com/pitchsignals/pitchsignals/internal/config"
	"github.com/pitchsignals/pitchsignals/internal/facebook"
	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/livescore"
	"github.com/pitchsignals/pitchsignals/internal/pipeline"
	"github.com/pitchsignals/pitchsignals/internal/telegram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var repo ledger.Repository
	mongoRepo, err := ledger.NewMongoRepository(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Warn().Err(err).Msg("MongoDB unavailable, using in-memory ledger for this run")
		repo = ledger.NewMemoryRepository()
	} else {
		repo = mongoRepo
		defer mongoRepo.Close(context.Background())
	}

	tracker := ledger.NewTracker(repo, cfg.LedgerRetentionDays)

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
	}

	var captions pipeline.CaptionGenerator
	if cfg.OpenAIAPIKey != "" {
		captions = caption.NewClient(caption.Config{
			APIKey:   cfg.OpenAIAPIKey,
			Endpoint: cfg.OpenAIEndpoint,
			Model:    cfg.OpenAIModel,
		})
	}

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

	report, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}

	log.Info().
		Int("fetched", report.Fetched).
		Int("upcoming", report.Upcoming).
		Int("wins", len(report.Wins)).
		Int("recorded", report.Recorded).
		Int("requests_used", report.RequestsUsed).
		Msg("Run completed")
}
