// Package pipeline orchestrates a single intelligence run: fetch,
// normalize, classify, settle, analyze, render, send, record.
package pipeline

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/analysis"
	"github.com/pitchsignals/pitchsignals/internal/classify"
	"github.com/pitchsignals/pitchsignals/internal/content"
	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/livescore"
	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/rs/zerolog/log"
)

// Fetcher is the upstream fixture source. A fresh fetcher is created
// per run so the request budget resets with it.
type Fetcher interface {
	MatchesByDate(ctx context.Context, date string) (*livescore.Response, error)
	LiveMatches(ctx context.Context) (*livescore.Response, error)
	RequestsUsed() int
}

// ChannelSender posts to the primary (Telegram) channel.
type ChannelSender interface {
	SendMessage(text string) error
	SendPhoto(photoURL, caption string) error
}

// PageSender posts to the secondary (Facebook) channel.
type PageSender interface {
	PostMessage(ctx context.Context, message string) error
}

// CaptionGenerator produces a social caption from match facts.
type CaptionGenerator interface {
	Generate(ctx context.Context, facts content.Facts) (string, error)
}

// Config holds per-run pipeline settings.
type Config struct {
	DigestSize   int
	RecordLimit  int
	CardImageURL string
}

// RunReport summarizes one pipeline run.
type RunReport struct {
	StartedAt     time.Time      `json:"started_at"`
	Fetched       int            `json:"fetched"`
	Upcoming      int            `json:"upcoming"`
	Wins          []ledger.Win   `json:"wins,omitempty"`
	Selected      []models.Match `json:"selected,omitempty"`
	Recorded      int            `json:"recorded"`
	RequestsUsed  int            `json:"requests_used"`
	DigestSent    bool           `json:"digest_sent"`
	SpotlightSent bool           `json:"spotlight_sent"`
	CardSent      bool           `json:"card_sent"`
}

// Runner executes the pipeline. Runs within one process are serialized;
// ledger mutation is per-key, so overlapping processes cannot lose
// updates either.
type Runner struct {
	newFetcher func() Fetcher
	tracker    *ledger.Tracker
	channel    ChannelSender
	page       PageSender
	captions   CaptionGenerator
	cfg        Config

	mu   sync.Mutex
	last *RunReport
}

// NewRunner creates a runner. channel, page, and captions may each be
// nil; the corresponding outputs are skipped.
func NewRunner(newFetcher func() Fetcher, tracker *ledger.Tracker, channel ChannelSender, page PageSender, captions CaptionGenerator, cfg Config) *Runner {
	return &Runner{
		newFetcher: newFetcher,
		tracker:    tracker,
		channel:    channel,
		page:       page,
		captions:   captions,
		cfg:        cfg,
	}
}

// Run performs one synchronous pass. Fetch failures degrade to an empty
// match list: the run is reported, content generation is skipped, and
// no error is raised. A send failure in one channel never aborts the
// other.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	report := &RunReport{StartedAt: now}

	fetcher := r.newFetcher()
	matches := r.fetch(ctx, fetcher, now)
	report.Fetched = len(matches)
	report.RequestsUsed = fetcher.RequestsUsed()

	for i := range matches {
		classify.Apply(&matches[i])
	}

	// Settle first so today's finished fixtures can verify yesterday's
	// picks before new ones are recorded.
	report.Wins = r.tracker.Settle(ctx, matches)

	upcoming := filterUpcoming(matches)
	sortByPriority(upcoming)
	report.Upcoming = len(upcoming)

	if len(upcoming) == 0 {
		log.Info().Int("fetched", len(matches)).Msg("No upcoming matches, skipping content generation")
		r.last = report
		return report, nil
	}

	selected := upcoming[:min(len(upcoming), max(r.cfg.DigestSize, r.cfg.RecordLimit))]
	for i := range selected {
		selected[i].Analysis = analysis.Analyze(selected[i])
		selected[i].Odds = analysis.SynthesizeOdds(selected[i])
	}
	report.Selected = selected

	// Both limits set to zero selects nothing; there is no top match to
	// publish.
	if len(selected) > 0 {
		r.publish(ctx, report, selected, report.Wins, now)
	}

	report.Recorded = r.tracker.Record(ctx, selected, r.cfg.RecordLimit)

	log.Info().
		Int("fetched", report.Fetched).
		Int("upcoming", report.Upcoming).
		Int("wins", len(report.Wins)).
		Int("recorded", report.Recorded).
		Msg("Pipeline run completed")

	r.last = report
	return report, nil
}

// RunLive performs one live-score sweep: fetch the in-play fixtures
// and post a score bulletin to the channel. A fresh fetcher per sweep
// means the request budget applies per sweep, same as Run. Fetch
// failures and an empty pitch both skip the post silently.
func (r *Runner) RunLive(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel == nil {
		return nil
	}

	fetcher := r.newFetcher()
	resp, err := fetcher.LiveMatches(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Live fetch failed, skipping sweep")
		return nil
	}

	var live []models.Match
	for _, m := range livescore.Normalize(resp) {
		if m.Status == models.StatusInPlay {
			live = append(live, m)
		}
	}

	if len(live) == 0 {
		log.Debug().Msg("No matches in play, skipping live update")
		return nil
	}

	if err := r.channel.SendMessage(content.LiveUpdate(live)); err != nil {
		log.Error().Err(err).Msg("Failed to send live update")
		return err
	}

	log.Info().Int("live", len(live)).Msg("Live update sent")
	return nil
}

// LastReport returns the most recent run report, or nil before the
// first run.
func (r *Runner) LastReport() *RunReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Runner) fetch(ctx context.Context, fetcher Fetcher, now time.Time) []models.Match {
	resp, err := fetcher.MatchesByDate(ctx, now.Format("20060102"))
	if err != nil {
		log.Warn().Err(err).Msg("Fixture fetch failed, proceeding with empty match list")
		return nil
	}
	return livescore.Normalize(resp)
}

// publish sends the rendered payloads. Each channel fails
// independently.
func (r *Runner) publish(ctx context.Context, report *RunReport, selected []models.Match, wins []ledger.Win, now time.Time) {
	if r.channel != nil {
		digest := content.Digest(selected, wins, now, r.cfg.DigestSize)
		if err := r.channel.SendMessage(digest); err != nil {
			log.Error().Err(err).Msg("Failed to send digest")
		} else {
			report.DigestSent = true
		}
	}

	top := selected[0]

	if r.page != nil {
		if err := r.page.PostMessage(ctx, content.Spotlight(top)); err != nil {
			log.Error().Err(err).Msg("Failed to post spotlight")
		} else {
			report.SpotlightSent = true
		}
	}

	if r.channel != nil && r.cfg.CardImageURL != "" {
		card := content.CardDescriptor(top)
		caption := r.caption(ctx, top, wins)
		if err := r.channel.SendPhoto(cardURL(r.cfg.CardImageURL, card), caption); err != nil {
			log.Error().Err(err).Msg("Failed to send match card")
		} else {
			report.CardSent = true
		}
	}
}

// caption generates the card caption, falling back to the local
// template when generation is unavailable or fails.
func (r *Runner) caption(ctx context.Context, m models.Match, wins []ledger.Win) string {
	priorWin := ""
	if len(wins) > 0 {
		priorWin = wins[0].Pick
	}
	facts := content.CaptionFacts(m, priorWin)

	if r.captions == nil {
		return content.FallbackCaption(facts)
	}

	caption, err := r.captions.Generate(ctx, facts)
	if err != nil {
		log.Warn().Err(err).Msg("Caption generation failed, using local template")
		return content.FallbackCaption(facts)
	}
	return caption
}

// cardURL expands the card image URL template with the descriptor
// facts. The actual rendering is an external collaborator.
func cardURL(template string, card content.Card) string {
	replacer := strings.NewReplacer(
		"{home}", url.QueryEscape(card.HomeTeam),
		"{away}", url.QueryEscape(card.AwayTeam),
		"{competition}", url.QueryEscape(card.Competition),
		"{pick}", url.QueryEscape(card.MainPick),
	)
	return replacer.Replace(template)
}

func filterUpcoming(matches []models.Match) []models.Match {
	var upcoming []models.Match
	for _, m := range matches {
		if m.Status == models.StatusNotStarted {
			upcoming = append(upcoming, m)
		}
	}
	return upcoming
}

// sortByPriority orders matches by tier, then kickoff within equal
// tier. Stable so provider order breaks remaining ties.
func sortByPriority(matches []models.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Tier != matches[j].Tier {
			return matches[i].Tier < matches[j].Tier
		}
		return matches[i].Kickoff.Before(matches[j].Kickoff)
	})
}
