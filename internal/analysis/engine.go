// Package analysis derives the deterministic betting angle for a match
// and synthesizes its display odds.
package analysis

import (
	"fmt"
	"hash/crc32"

	"github.com/pitchsignals/pitchsignals/internal/models"
)

// checksumVersion tags the stable key derivation. Bump only with a
// deliberate migration: changing it changes every published pick.
const checksumVersion = 1

// StableKey maps a team-name pair to a stable integer. CRC-32 (IEEE)
// over "home|away" is identical across runs and process restarts,
// unlike runtime map hashing.
func StableKey(home, away string) uint32 {
	return crc32.ChecksumIEEE([]byte(home + "|" + away))
}

// Branch edge labels.
const (
	edgeHomeDominance = "Home Dominance"
	edgeAwayValue     = "Away Value"
	edgeGoalsExpected = "Goals Expected"
	edgeTightContest  = "Tight Contest"
	edgeMarketLean    = "Market Lean"
)

// Analyze returns the stable {edge, insight, main pick, alt pick}
// quadruple for a match. Output depends only on the team names and the
// classifier tags, never on wall-clock time or prior runs. Branch
// precedence is fixed; the first matching branch wins.
func Analyze(m models.Match) models.Analysis {
	key := StableKey(m.HomeTeam, m.AwayTeam)

	switch {
	case m.HomePowerhouse && !m.AwayPowerhouse:
		return models.Analysis{
			Edge:     edgeHomeDominance,
			Insight:  phrase(dominantHomePool, key, m.HomeTeam, m.AwayTeam),
			MainPick: fmt.Sprintf("%s to Win", m.HomeTeam),
			AltPick:  fmt.Sprintf("%s -1 Handicap", m.HomeTeam),
		}

	case m.AwayPowerhouse && !m.HomePowerhouse:
		return models.Analysis{
			Edge:     edgeAwayValue,
			Insight:  phrase(underdogValuePool, key, m.AwayTeam, m.HomeTeam),
			MainPick: fmt.Sprintf("%s to Win", m.AwayTeam),
			AltPick:  fmt.Sprintf("%s Draw No Bet", m.AwayTeam),
		}

	case m.Style == models.StyleHighScoring:
		return models.Analysis{
			Edge:     edgeGoalsExpected,
			Insight:  phrase(goalsPool, key, m.HomeTeam, m.AwayTeam),
			MainPick: "Over 2.5 Goals",
			AltPick:  "Both Teams to Score",
		}

	case m.Style == models.StyleDefensive:
		return models.Analysis{
			Edge:     edgeTightContest,
			Insight:  phrase(tightPool, key, m.HomeTeam, m.AwayTeam),
			MainPick: "Under 2.5 Goals",
			AltPick:  "Draw",
		}

	default:
		return balancedDefault(m, key)
	}
}

// balancedDefault selects one of exactly three predetermined picks via
// modulo-3 on the stable key. The insight pool is index-aligned with
// the picks.
func balancedDefault(m models.Match, key uint32) models.Analysis {
	idx := int(key % 3)

	picks := [3]struct{ main, alt string }{
		{fmt.Sprintf("%s to Win", m.HomeTeam), "Draw No Bet"},
		{"Over 1.5 Goals", "Over 2.5 Goals"},
		{"Both Teams to Score", "Over 1.5 Goals"},
	}

	return models.Analysis{
		Edge:     edgeMarketLean,
		Insight:  fmt.Sprintf(balancedPool[idx], m.HomeTeam, m.AwayTeam),
		MainPick: picks[idx].main,
		AltPick:  picks[idx].alt,
	}
}

// phrase selects and formats a pool entry from the stable key.
func phrase(pool []string, key uint32, a, b string) string {
	return fmt.Sprintf(pool[key%uint32(len(pool))], a, b)
}
