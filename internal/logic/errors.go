package logic

import "errors"

// Recoverable query conditions. Handlers map these to informational
// responses; none of them is a server fault.
var (
	// ErrSameTeam: the same team was chosen on both sides of a comparison.
	ErrSameTeam = errors.New("select two different teams")

	// ErrNoHistory: valid team pair with zero games on record.
	ErrNoHistory = errors.New("no games between the selected teams")

	// ErrEmptyRange: valid season range containing zero games.
	ErrEmptyRange = errors.New("no games in the selected season range")

	// ErrUnknownKPI: the KPI name is not one of the supported set.
	ErrUnknownKPI = errors.New("unknown kpi name")

	// ErrUnknownGroup: the grouping key is not one of the supported set.
	ErrUnknownGroup = errors.New("unknown grouping key")

	// ErrUnknownMetric: the ranking metric is not one of the supported set.
	ErrUnknownMetric = errors.New("unknown metric")
)
