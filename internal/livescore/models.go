package livescore

import "encoding/json"

// Response is the raw provider payload: fixtures grouped by stage
// (competition), each stage carrying a list of events.
type Response struct {
	Stages []Stage `json:"Stages"`
}

// Stage is one competition grouping.
type Stage struct {
	StageName string  `json:"Snm"`
	Country   string  `json:"Cnm"`
	StageID   string  `json:"Sid"`
	Events    []Event `json:"Events"`
}

// Event is one fixture inside a stage.
type Event struct {
	EventID    string      `json:"Eid"`
	HomeTeams  []Team      `json:"T1"`
	AwayTeams  []Team      `json:"T2"`
	HomeScore  string      `json:"Tr1"`
	AwayScore  string      `json:"Tr2"`
	StatusCode string      `json:"Eps"`
	StartTime  json.Number `json:"Esd"`
}

// Team is a side of an event. Rnk is omitted by the provider for
// unranked teams.
type Team struct {
	Name string `json:"Nm"`
	Rank int    `json:"Rnk"`
}
