package models

// KPI names accepted by the KPI endpoint
const (
	KPITotalGames     = "total_games"
	KPIAvgTotalPoints = "avg_total_points"
	KPIHomeWinRate    = "home_win_rate"
	KPICloseGames     = "close_games"
)

// Grouping keys for the time-series and venue views
const (
	GroupMonth   = "month"
	GroupWeek    = "week"
	GroupYear    = "year"
	GroupStadium = "stadium"
)

// Metrics a grouped view can be ranked by
const (
	MetricGames          = "games"
	MetricAvgTotalPoints = "avg_total_points"
)

type KPIRequest struct {
	SeasonFrom int    `json:"season_from" validate:"gte=0"`
	SeasonTo   int    `json:"season_to" validate:"gtefield=SeasonFrom"`
	Name       string `json:"name" validate:"required,oneof=total_games avg_total_points home_win_rate close_games"`
}

type HeadToHeadRequest struct {
	TeamA string `json:"team_a" validate:"required"`
	TeamB string `json:"team_b" validate:"required"`
}

type TimeSeriesRequest struct {
	Group  string `json:"group" validate:"required,oneof=month week year"`
	Metric string `json:"metric" validate:"omitempty,oneof=games avg_total_points"`
}

type VenuesRequest struct {
	Metric string `json:"metric" validate:"omitempty,oneof=games avg_total_points"`
}
