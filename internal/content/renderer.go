// Package content renders analyzed matches into channel-neutral
// payloads. Everything here is pure string and struct assembly: no
// network or file I/O.
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/models"
)

// AffiliateLink is one promoted bookmaker entry in the digest footer.
type AffiliateLink struct {
	Label string
	URL   string
}

// AffiliateLinks is the fixed promotional block appended to digests.
// Telegram only; the spotlight channel never carries these.
var AffiliateLinks = []AffiliateLink{
	{Label: "🎰 Stake", URL: "https://stake.com/?c=pitchsignals"},
	{Label: "📊 Linebet", URL: "https://linebet.com/?bf=pitchsignals"},
	{Label: "🏆 1xBet", URL: "https://1xbet.com/?bf=pitchsignals"},
}

// ChannelLink is the Telegram channel promoted on the spotlight channel.
const ChannelLink = "https://t.me/pitchsignals"

// Card carries the structured facts handed to the external image
// renderer. No pixel logic lives here.
type Card struct {
	Competition string    `json:"competition"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	MainPick    string    `json:"main_pick"`
	Kickoff     time.Time `json:"kickoff"`
}

// Facts carries the structured facts handed to the caption generator.
type Facts struct {
	Competition string      `json:"competition"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	Insight     string      `json:"insight"`
	MainPick    string      `json:"main_pick"`
	Odds        models.Odds `json:"odds"`
	PriorWin    string      `json:"prior_win,omitempty"`
}

// Digest renders the daily digest: the first k matches grouped by
// competition in priority order, prefixed by verified wins when any
// exist and suffixed by the fixed promotional block.
func Digest(matches []models.Match, wins []ledger.Win, now time.Time, k int) string {
	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}

	var b strings.Builder

	b.WriteString("⚽ *TODAY'S MATCH DIGEST* ⚽\n")
	b.WriteString("📆 " + now.UTC().Format("Monday, January 2, 2006") + "\n")

	if len(wins) > 0 {
		b.WriteString("\n✅ *VERIFIED WINS* ✅\n")
		for _, w := range wins {
			b.WriteString(fmt.Sprintf("🏆 %s %d-%d — %s ✔\n",
				w.Match.Fixture(), w.Match.HomeScore, w.Match.AwayScore, w.Pick))
		}
	}

	// Group by competition, preserving the priority order of first
	// appearance.
	var order []string
	grouped := make(map[string][]models.Match)
	for _, m := range matches {
		if _, ok := grouped[m.Competition]; !ok {
			order = append(order, m.Competition)
		}
		grouped[m.Competition] = append(grouped[m.Competition], m)
	}

	for _, comp := range order {
		b.WriteString("\n🏆 *" + comp + "*\n")
		for _, m := range grouped[comp] {
			b.WriteString(fmt.Sprintf("⏰ %s GMT | %s\n", m.Kickoff.UTC().Format("15:04"), m.Fixture()))
			b.WriteString(fmt.Sprintf("🏷 %s\n", m.Analysis.Edge))
			b.WriteString(fmt.Sprintf("💡 %s\n", m.Analysis.Insight))
			b.WriteString(fmt.Sprintf("🎯 %s (alt: %s)\n", m.Analysis.MainPick, m.Analysis.AltPick))
		}
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("💰 *BET NOW & WIN BIG!* 💰\n\n")
	for _, link := range AffiliateLinks {
		b.WriteString(fmt.Sprintf("👉 %s: %s\n", link.Label, link.URL))
	}
	b.WriteString("\n🔔 Turn on notifications for live picks!\n")
	b.WriteString("#Football #Betting #Predictions")

	return b.String()
}

// Spotlight renders the single top-priority match with its full
// analysis for the secondary channel. No affiliate links here.
func Spotlight(m models.Match) string {
	var b strings.Builder

	b.WriteString("🔥 BIG MATCH ALERT! 🔥\n\n")
	b.WriteString(fmt.Sprintf("⚽ %s 🆚 %s\n\n", m.HomeTeam, m.AwayTeam))
	b.WriteString(fmt.Sprintf("🏆 %s\n", m.Competition))
	b.WriteString(fmt.Sprintf("⏰ Kick-off: %s GMT\n\n", m.Kickoff.UTC().Format("15:04")))
	b.WriteString(fmt.Sprintf("🏷 %s\n", m.Analysis.Edge))
	b.WriteString(fmt.Sprintf("💡 %s\n", m.Analysis.Insight))
	b.WriteString(fmt.Sprintf("🎯 Our pick: %s\n\n", m.Analysis.MainPick))
	b.WriteString("👇 Join our Telegram for FREE insights! 👇\n")
	b.WriteString("📲 " + ChannelLink + "\n\n")
	b.WriteString("#Football #MatchDay #Prediction")

	return b.String()
}

// LiveUpdate renders the in-play score bulletin for the live sweep.
// No analysis and no affiliate links, just scores.
func LiveUpdate(matches []models.Match) string {
	var b strings.Builder

	b.WriteString("🔴 *LIVE SCORES* 🔴\n")
	for _, m := range matches {
		b.WriteString(fmt.Sprintf("\n⚽ %s %d-%d %s\n🏆 %s\n",
			m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam, m.Competition))
	}
	b.WriteString("\n🔔 Follow for the final-whistle verdicts!")

	return b.String()
}

// CardDescriptor extracts the image-card facts for a match.
func CardDescriptor(m models.Match) Card {
	return Card{
		Competition: m.Competition,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		MainPick:    m.Analysis.MainPick,
		Kickoff:     m.Kickoff,
	}
}

// CaptionFacts extracts the caption-generation facts for a match.
// priorWin, when non-empty, is a recently verified pick used as social
// proof.
func CaptionFacts(m models.Match, priorWin string) Facts {
	return Facts{
		Competition: m.Competition,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		Insight:     m.Analysis.Insight,
		MainPick:    m.Analysis.MainPick,
		Odds:        m.Odds,
		PriorWin:    priorWin,
	}
}

// FallbackCaption renders the deterministic local caption used when
// generation is unavailable.
func FallbackCaption(f Facts) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("⚽ %s vs %s — %s\n", f.HomeTeam, f.AwayTeam, f.Competition))
	b.WriteString(fmt.Sprintf("📊 Odds: %.2f | %.2f | %.2f\n", f.Odds.Home, f.Odds.Draw, f.Odds.Away))
	b.WriteString(fmt.Sprintf("💡 %s\n", f.Insight))
	b.WriteString(fmt.Sprintf("🎯 %s", f.MainPick))
	if f.PriorWin != "" {
		b.WriteString(fmt.Sprintf("\n✅ Last call landed: %s", f.PriorWin))
	}

	return b.String()
}
