package models

import "time"

// SeasonRange is an inclusive season filter.
type SeasonRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Contains reports whether season falls inside the range, both ends inclusive.
func (r SeasonRange) Contains(season int) bool {
	return season >= r.From && season <= r.To
}

// KPIResult is a single headline statistic over a season range.
type KPIResult struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Display     string  `json:"display"`
	Description string  `json:"description"`
}

// H2HGame is one game between the two selected teams, shaped for the
// detail table of the comparison view.
type H2HGame struct {
	ScheduleDate *time.Time `json:"schedule_date,omitempty"`
	Season       int        `json:"season"`
	Week         int        `json:"week"`
	Stadium      string     `json:"stadium"`
	TeamHome     string     `json:"team_home"`
	ScoreHome    *float64   `json:"score_home"`
	ScoreAway    *float64   `json:"score_away"`
	TeamAway     string     `json:"team_away"`
	TotalPoints  *float64   `json:"total_points"`
	Phase        string     `json:"phase"`
	Winner       string     `json:"winner"`
}

// H2HResult is the full head-to-head history between two teams.
type H2HResult struct {
	TeamA          string    `json:"team_a"`
	TeamB          string    `json:"team_b"`
	Games          int       `json:"games"`
	WinsA          int       `json:"wins_a"`
	WinsB          int       `json:"wins_b"`
	Ties           int       `json:"ties"`
	AvgTotalPoints float64   `json:"avg_total_points"`
	Rows           []H2HGame `json:"rows"`
}

// GroupAggregate is one bucket of a grouped aggregation.
type GroupAggregate struct {
	Key            string  `json:"key"`
	Games          int     `json:"games"`
	AvgTotalPoints float64 `json:"avg_total_points"`
}

// DatasetSummary describes the loaded table as a whole.
type DatasetSummary struct {
	Games        int        `json:"games"`
	PlayoffGames int        `json:"playoff_games"`
	Teams        int        `json:"teams"`
	SeasonMin    int        `json:"season_min"`
	SeasonMax    int        `json:"season_max"`
	FirstDate    *time.Time `json:"first_date,omitempty"`
	LastDate     *time.Time `json:"last_date,omitempty"`
}
