// Package classify assigns tier, powerhouse, and tactical style tags
// to canonical matches.
package classify

import (
	"strings"

	"github.com/pitchsignals/pitchsignals/internal/models"
)

// Apply tags the match in place. Tier assignment precedes style: a
// powerhouse side outside a tier-1 competition promotes the match to
// the intermediate tier.
func Apply(m *models.Match) {
	comp := strings.ToLower(m.Competition)

	switch {
	case matchesAny(comp, models.Tier1Keywords):
		m.Tier = models.TierTop
	case matchesAny(comp, models.Tier2Keywords):
		m.Tier = models.TierSecond
	default:
		m.Tier = models.TierMinor
	}

	m.HomePowerhouse = IsPowerhouse(m.HomeTeam)
	m.AwayPowerhouse = IsPowerhouse(m.AwayTeam)

	if (m.HomePowerhouse || m.AwayPowerhouse) && m.Tier != models.TierTop {
		m.Tier = models.TierIntermediate
	}

	m.IsMajor = m.Tier < models.TierMinor
	m.Style = styleFor(comp)
}

// IsPowerhouse reports whether the team name matches the curated
// elite-club list.
func IsPowerhouse(team string) bool {
	name := strings.ToLower(team)
	for _, club := range models.PowerhouseClubs {
		if strings.Contains(name, club) {
			return true
		}
	}
	return false
}

// styleFor checks the ordered style keyword lists; first match wins.
func styleFor(comp string) models.Style {
	switch {
	case matchesAny(comp, models.HighScoringKeywords):
		return models.StyleHighScoring
	case matchesAny(comp, models.DefensiveKeywords):
		return models.StyleDefensive
	case matchesAny(comp, models.BalancedKeywords):
		return models.StyleBalanced
	default:
		return models.StyleBalanced
	}
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
