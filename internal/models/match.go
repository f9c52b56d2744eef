// Package models defines the core data structures for PitchSignals.
package models

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a fixture.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInPlay     Status = "in_play"
	StatusFinished   Status = "finished"
	StatusOther      Status = "other"
)

// Tier is the priority bucket of a match: 1 highest, 3 lowest, with an
// intermediate 1.5 for powerhouse fixtures outside top competitions.
type Tier float64

const (
	TierTop          Tier = 1
	TierIntermediate Tier = 1.5
	TierSecond       Tier = 2
	TierMinor        Tier = 3
)

// Style is the tactical profile assigned to a match's competition.
type Style string

const (
	StyleHighScoring Style = "HIGH_SCORING"
	StyleDefensive   Style = "DEFENSIVE"
	StyleBalanced    Style = "BALANCED"
)

// DefaultRank is the sentinel used when the provider carries no rank
// for a team.
const DefaultRank = 50

// Odds is a display-only decimal odds triple. It never feeds back into
// the analysis.
type Odds struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// Analysis is the three-part betting rationale derived per match, plus
// an alternate market. Stable for a given (home, away) pair.
type Analysis struct {
	Edge     string `json:"edge"`
	Insight  string `json:"insight"`
	MainPick string `json:"main_pick"`
	AltPick  string `json:"alt_pick"`
}

// Match is the canonical fixture record flowing through the pipeline.
type Match struct {
	// Provider fields
	Competition string    `json:"competition"`
	Country     string    `json:"country,omitempty"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	HomeRank    int       `json:"home_rank"`
	AwayRank    int       `json:"away_rank"`
	Kickoff     time.Time `json:"kickoff"`
	Status      Status    `json:"status"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`

	// Classification
	IsMajor        bool  `json:"is_major"`
	Tier           Tier  `json:"tier"`
	Style          Style `json:"style"`
	HomePowerhouse bool  `json:"home_powerhouse"`
	AwayPowerhouse bool  `json:"away_powerhouse"`

	// Derived content
	Odds     Odds     `json:"odds"`
	Analysis Analysis `json:"analysis"`
}

// Key returns the ledger identity of the match. Identity is the team
// name pair only; a rematch between the same sides reuses the key.
func (m *Match) Key() string {
	return m.HomeTeam + "|" + m.AwayTeam
}

// Fixture returns the "Home vs Away" display string.
func (m *Match) Fixture() string {
	return fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam)
}

// TotalGoals returns the combined score.
func (m *Match) TotalGoals() int {
	return m.HomeScore + m.AwayScore
}
