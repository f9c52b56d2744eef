package content

import (
	"strings"
	"testing"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/stretchr/testify/assert"
)

var renderNow = time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)

func analyzed(comp, home, away string, hour int) models.Match {
	return models.Match{
		Competition: comp,
		HomeTeam:    home,
		AwayTeam:    away,
		Kickoff:     time.Date(2026, 8, 25, hour, 0, 0, 0, time.UTC),
		Analysis: models.Analysis{
			Edge:     "Market Lean",
			Insight:  home + " should edge " + away + ".",
			MainPick: home + " to Win",
			AltPick:  "Draw No Bet",
		},
	}
}

func TestDigestBoundedToK(t *testing.T) {
	matches := []models.Match{
		analyzed("Premier League", "Arsenal", "Chelsea", 15),
		analyzed("Premier League", "Leeds", "Everton", 17),
		analyzed("Serie A", "Inter", "Roma", 19),
	}

	out := Digest(matches, nil, renderNow, 2)

	assert.Contains(t, out, "Arsenal vs Chelsea")
	assert.Contains(t, out, "Leeds vs Everton")
	assert.NotContains(t, out, "Inter vs Roma")
}

func TestDigestGroupsByCompetitionInOrder(t *testing.T) {
	matches := []models.Match{
		analyzed("Champions League", "Arsenal", "Bayern Munich", 20),
		analyzed("Serie A", "Inter", "Roma", 19),
		analyzed("Champions League", "Real Madrid", "Liverpool", 20),
	}

	out := Digest(matches, nil, renderNow, 5)

	clIdx := strings.Index(out, "🏆 *Champions League*")
	saIdx := strings.Index(out, "🏆 *Serie A*")
	assert.Greater(t, saIdx, clIdx)
	assert.Equal(t, 1, strings.Count(out, "🏆 *Champions League*"))

	// Second Champions League match folds into the first group.
	assert.Greater(t, strings.Index(out, "Real Madrid vs Liverpool"), clIdx)
	assert.Less(t, strings.Index(out, "Real Madrid vs Liverpool"), saIdx)
}

func TestDigestWinsBlock(t *testing.T) {
	m := analyzed("Premier League", "Arsenal", "Chelsea", 15)

	win := ledger.Win{
		Match: models.Match{HomeTeam: "Leeds", AwayTeam: "Everton", HomeScore: 2, AwayScore: 0},
		Pick:  "Leeds to Win",
	}

	withWins := Digest([]models.Match{m}, []ledger.Win{win}, renderNow, 5)
	assert.Contains(t, withWins, "VERIFIED WINS")
	assert.Contains(t, withWins, "Leeds vs Everton 2-0 — Leeds to Win")

	withoutWins := Digest([]models.Match{m}, nil, renderNow, 5)
	assert.NotContains(t, withoutWins, "VERIFIED WINS")
}

func TestDigestCarriesPromoBlock(t *testing.T) {
	out := Digest([]models.Match{analyzed("Premier League", "Arsenal", "Chelsea", 15)}, nil, renderNow, 5)

	for _, link := range AffiliateLinks {
		assert.Contains(t, out, link.URL)
	}
	assert.Contains(t, out, "#Football #Betting #Predictions")
	assert.Contains(t, out, "⏰ 15:00 GMT | Arsenal vs Chelsea")
}

func TestSpotlightHasNoAffiliateLinks(t *testing.T) {
	out := Spotlight(analyzed("Champions League", "Real Madrid", "Liverpool", 20))

	assert.Contains(t, out, "BIG MATCH ALERT")
	assert.Contains(t, out, "Real Madrid 🆚 Liverpool")
	assert.Contains(t, out, ChannelLink)
	for _, link := range AffiliateLinks {
		assert.NotContains(t, out, link.URL)
	}
}

func TestLiveUpdate(t *testing.T) {
	matches := []models.Match{
		{Competition: "Premier League", HomeTeam: "Leeds", AwayTeam: "Everton", HomeScore: 2, AwayScore: 1},
		{Competition: "Serie A", HomeTeam: "Inter", AwayTeam: "Roma", HomeScore: 0, AwayScore: 0},
	}

	out := LiveUpdate(matches)

	assert.Contains(t, out, "LIVE SCORES")
	assert.Contains(t, out, "Leeds 2-1 Everton")
	assert.Contains(t, out, "Inter 0-0 Roma")
	for _, link := range AffiliateLinks {
		assert.NotContains(t, out, link.URL)
	}
}

func TestCardDescriptor(t *testing.T) {
	m := analyzed("Serie A", "Inter", "Roma", 19)

	card := CardDescriptor(m)
	assert.Equal(t, "Serie A", card.Competition)
	assert.Equal(t, "Inter", card.HomeTeam)
	assert.Equal(t, "Roma", card.AwayTeam)
	assert.Equal(t, "Inter to Win", card.MainPick)
	assert.Equal(t, m.Kickoff, card.Kickoff)
}

func TestFallbackCaption(t *testing.T) {
	m := analyzed("Premier League", "Arsenal", "Chelsea", 15)
	m.Odds = models.Odds{Home: 1.65, Draw: 3.4, Away: 4.2}

	out := FallbackCaption(CaptionFacts(m, ""))
	assert.Contains(t, out, "Arsenal vs Chelsea — Premier League")
	assert.Contains(t, out, "Odds: 1.65 | 3.40 | 4.20")
	assert.Contains(t, out, "🎯 Arsenal to Win")
	assert.NotContains(t, out, "Last call landed")

	withWin := FallbackCaption(CaptionFacts(m, "Leeds to Win"))
	assert.Contains(t, withWin, "Last call landed: Leeds to Win")
}
