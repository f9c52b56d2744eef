package ledger

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/rs/zerolog/log"
)

// Win is a settled pick whose predicate held against the final score.
type Win struct {
	Match    models.Match `json:"match"`
	Pick     string       `json:"pick"`
	Recorded time.Time    `json:"recorded"`
}

// Tracker runs the two per-run ledger operations: settling pending
// picks against finished matches and recording new ones.
type Tracker struct {
	repo      Repository
	retention time.Duration
}

// NewTracker creates a tracker. retentionDays bounds how long an
// unresolved pick may stay pending; zero disables the purge.
func NewTracker(repo Repository, retentionDays int) *Tracker {
	return &Tracker{
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Settle evaluates every pending pick against the finished subset of
// matches. A win deletes the entry and reports it exactly once; a loss,
// draw, or unfinished match leaves the entry untouched. Re-running with
// the same finished set is a no-op for already-settled picks. An
// unreadable ledger is treated as empty so the run can proceed.
func (t *Tracker) Settle(ctx context.Context, matches []models.Match) []Win {
	entries, err := t.repo.All(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Ledger unreadable, settling against empty ledger")
		return nil
	}

	finished := make(map[string]models.Match)
	for _, m := range matches {
		if m.Status == models.StatusFinished {
			finished[m.Key()] = m
		}
	}

	now := time.Now().UTC()
	var wins []Win

	for _, e := range entries {
		if t.retention > 0 && now.Sub(e.RecordedDate) > t.retention {
			if err := t.repo.Delete(ctx, e.Key); err != nil {
				log.Warn().Err(err).Str("key", e.Key).Msg("Failed to purge expired entry")
				continue
			}
			log.Info().
				Str("key", e.Key).
				Str("pick", e.Pick).
				Time("recorded", e.RecordedDate).
				Msg("Expired pending pick purged")
			continue
		}

		m, ok := finished[e.Key]
		if !ok {
			continue
		}

		if !PickWins(e.Pick, m) {
			continue
		}

		wins = append(wins, Win{Match: m, Pick: e.Pick, Recorded: e.RecordedDate})

		if err := t.repo.Delete(ctx, e.Key); err != nil {
			log.Warn().Err(err).Str("key", e.Key).Msg("Failed to delete settled entry")
		}

		log.Info().
			Str("fixture", m.Fixture()).
			Str("pick", e.Pick).
			Int("home", m.HomeScore).
			Int("away", m.AwayScore).
			Msg("Pick verified as win")
	}

	return wins
}

// Record upserts picks for the first limit priority-ordered matches
// that carry a main pick, overwriting any prior unresolved entry for
// the same key. Returns the number of entries written.
func (t *Tracker) Record(ctx context.Context, matches []models.Match, limit int) int {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	recorded := 0

	for _, m := range matches {
		if recorded >= limit {
			break
		}
		if m.Analysis.MainPick == "" {
			continue
		}

		entry := Entry{
			Key:          m.Key(),
			HomeTeam:     m.HomeTeam,
			AwayTeam:     m.AwayTeam,
			RecordedDate: today,
			Pick:         m.Analysis.MainPick,
		}

		if err := t.repo.Upsert(ctx, entry); err != nil {
			log.Warn().Err(err).Str("key", entry.Key).Msg("Failed to record pick")
			continue
		}
		recorded++
	}

	if recorded > 0 {
		log.Info().Int("recorded", recorded).Msg("Pending picks recorded")
	}

	return recorded
}

// PickWins evaluates the market-family win predicate for a recorded
// pick text against a finished match.
//
//	"<team> to Win"       the named team outscored its opponent
//	"Over <n> Goals"      combined goals exceed the threshold
//	"Both Teams to Score" both sides scored
//
// Any other market family never settles as a win.
func PickWins(pick string, m models.Match) bool {
	switch {
	case strings.Contains(pick, " to Win"):
		team := strings.TrimSpace(strings.Split(pick, " to Win")[0])
		if team == m.HomeTeam {
			return m.HomeScore > m.AwayScore
		}
		if team == m.AwayTeam {
			return m.AwayScore > m.HomeScore
		}
		return false

	case strings.HasPrefix(pick, "Over "):
		threshold, ok := overThreshold(pick)
		if !ok {
			return false
		}
		return float64(m.TotalGoals()) > threshold

	case strings.HasPrefix(pick, "Both Teams"):
		return m.HomeScore > 0 && m.AwayScore > 0

	default:
		return false
	}
}

// overThreshold extracts n from "Over <n> Goals".
func overThreshold(pick string) (float64, bool) {
	fields := strings.Fields(pick)
	if len(fields) < 2 {
		return 0, false
	}
	n, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
