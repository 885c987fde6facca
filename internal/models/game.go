package models

import "time"

// Game phase values derived at load time
const (
	PhaseRegular  = "Regular"
	PhasePlayoffs = "Playoffs"
)

// GameRecord is one historical game. Optional numeric columns are pointers:
// a nil value means the source cell was empty or failed numeric coercion.
// Records are built once by the loader and never mutated afterwards.
type GameRecord struct {
	Season         int        `json:"season"`
	Week           int        `json:"week"`
	ScheduleDate   *time.Time `json:"schedule_date,omitempty"`
	TeamHome       string     `json:"team_home"`
	TeamAway       string     `json:"team_away"`
	ScoreHome      *float64   `json:"score_home"`
	ScoreAway      *float64   `json:"score_away"`
	OverUnderLine  *float64   `json:"over_under_line,omitempty"`
	SpreadFavorite *float64   `json:"spread_favorite,omitempty"`
	Stadium        string     `json:"stadium"`
	Playoff        bool       `json:"playoff"`

	// Derived at load
	TotalPoints *float64 `json:"total_points"`
	MarginHome  *float64 `json:"margin_home"`
	Phase       string   `json:"phase"`
	Year        int      `json:"year"`
	MonthYear   string   `json:"month_year"`
	WeekOfYear  int      `json:"week_of_year"`
}
