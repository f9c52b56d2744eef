package analysis

import (
	"testing"

	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeOddsBounds(t *testing.T) {
	m := models.Match{HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeRank: 2, AwayRank: 6}

	for i := 0; i < 200; i++ {
		odds := SynthesizeOdds(m)
		for _, v := range []float64{odds.Home, odds.Draw, odds.Away} {
			assert.GreaterOrEqual(t, v, 1.01)
			assert.LessOrEqual(t, v, 15.0)
		}
	}
}

func TestSynthesizeOddsFavoriteBelowUnderdog(t *testing.T) {
	home := models.Match{HomeTeam: "Bayern Munich", AwayTeam: "Bochum", HomePowerhouse: true}
	away := models.Match{HomeTeam: "Cadiz", AwayTeam: "Real Madrid", AwayPowerhouse: true}

	for i := 0; i < 200; i++ {
		o := SynthesizeOdds(home)
		assert.Less(t, o.Home, o.Away)

		o = SynthesizeOdds(away)
		assert.Less(t, o.Away, o.Home)
	}
}

func TestFavoriteIsHome(t *testing.T) {
	tests := []struct {
		name  string
		match models.Match
		want  bool
	}{
		{"home powerhouse", models.Match{HomePowerhouse: true}, true},
		{"away powerhouse", models.Match{AwayPowerhouse: true}, false},
		{"better home rank", models.Match{HomeRank: 3, AwayRank: 10}, true},
		{"better away rank", models.Match{HomeRank: 10, AwayRank: 3}, false},
		{"equal ranks default home", models.Match{HomeRank: 5, AwayRank: 5}, true},
		{"both powerhouses use rank", models.Match{HomePowerhouse: true, AwayPowerhouse: true, HomeRank: 8, AwayRank: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, favoriteIsHome(tt.match))
		})
	}
}
