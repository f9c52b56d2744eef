package analysis

import (
	"math/rand"

	"github.com/pitchsignals/pitchsignals/internal/models"
)

// Display odds bounds. Decimal odds outside this range read as broken.
const (
	minOdds = 1.01
	maxOdds = 15.0
)

// SynthesizeOdds produces the display-only {home, draw, away} decimal
// odds triple, biased toward the classified favorite with bounded
// jitter for visual realism. Unlike the analysis, this output may vary
// run to run and must never feed back into pick derivation.
func SynthesizeOdds(m models.Match) models.Odds {
	homeFavorite := favoriteIsHome(m)

	fav := clampOdds(1.45 + rand.Float64()*0.50)
	dog := clampOdds(2.90 + rand.Float64()*1.80)
	draw := clampOdds(3.00 + rand.Float64()*0.70)

	// The favorite must always price below the underdog.
	if fav >= dog {
		fav, dog = dog, fav
	}

	if homeFavorite {
		return models.Odds{Home: round2(fav), Draw: round2(draw), Away: round2(dog)}
	}
	return models.Odds{Home: round2(dog), Draw: round2(draw), Away: round2(fav)}
}

// favoriteIsHome mirrors the analysis bias: powerhouse mismatch first,
// then the better (lower) league rank, then home advantage.
func favoriteIsHome(m models.Match) bool {
	switch {
	case m.HomePowerhouse && !m.AwayPowerhouse:
		return true
	case m.AwayPowerhouse && !m.HomePowerhouse:
		return false
	case m.HomeRank != m.AwayRank:
		return m.HomeRank < m.AwayRank
	default:
		return true
	}
}

func clampOdds(v float64) float64 {
	if v < minOdds {
		return minOdds
	}
	if v > maxOdds {
		return maxOdds
	}
	return v
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
