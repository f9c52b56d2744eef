package livescore

import (
	"strconv"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/rs/zerolog/log"
)

// timestampLayout is the provider's fixed-width kickoff format:
// year, month, day, hour, minute, second concatenated.
const timestampLayout = "20060102150405"

// statusByCode maps provider status codes to the canonical enum.
var statusByCode = map[string]models.Status{
	"NS":   models.StatusNotStarted,
	"1H":   models.StatusInPlay,
	"HT":   models.StatusInPlay,
	"2H":   models.StatusInPlay,
	"ET":   models.StatusInPlay,
	"LIVE": models.StatusInPlay,
	"FT":   models.StatusFinished,
	"AET":  models.StatusFinished,
	"PEN":  models.StatusFinished,
}

// Normalize flattens the raw provider payload into canonical Match
// records. Events with an unparseable kickoff timestamp or a missing
// team are dropped entirely so downstream time-ordering stays correct.
func Normalize(resp *Response) []models.Match {
	if resp == nil {
		return nil
	}

	var matches []models.Match
	dropped := 0

	for _, stage := range resp.Stages {
		for _, ev := range stage.Events {
			if len(ev.HomeTeams) == 0 || len(ev.AwayTeams) == 0 {
				dropped++
				continue
			}

			kickoff, ok := parseKickoff(ev.StartTime.String())
			if !ok {
				dropped++
				continue
			}

			home := ev.HomeTeams[0]
			away := ev.AwayTeams[0]

			matches = append(matches, models.Match{
				Competition: stage.StageName,
				Country:     stage.Country,
				HomeTeam:    home.Name,
				AwayTeam:    away.Name,
				HomeRank:    rankOrDefault(home.Rank),
				AwayRank:    rankOrDefault(away.Rank),
				Kickoff:     kickoff,
				Status:      parseStatus(ev.StatusCode),
				HomeScore:   parseScore(ev.HomeScore),
				AwayScore:   parseScore(ev.AwayScore),
			})
		}
	}

	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("Dropped unparseable events")
	}

	return matches
}

// parseKickoff parses the fixed-width numeric timestamp as GMT.
// Anything that is not exactly 14 digits fails closed.
func parseKickoff(raw string) (time.Time, bool) {
	if len(raw) != len(timestampLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(timestampLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseStatus(code string) models.Status {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return models.StatusOther
}

// rankOrDefault applies the documented sentinel when the provider
// omits a rank.
func rankOrDefault(rank int) int {
	if rank <= 0 {
		return models.DefaultRank
	}
	return rank
}

func parseScore(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
