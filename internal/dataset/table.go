package dataset

import (
	"sort"

	"github.com/nflcentral/scores-api/internal/models"
)

// Table is the normalized, immutable game table shared by all query
// services. It is built once by Load (or NewTable in tests) and must not
// be mutated afterwards.
type Table struct {
	rows      []models.GameRecord
	teams     []string
	seasonMin int
	seasonMax int
}

// NewTable wraps rows in a Table and precomputes the distinct team list
// and season bounds.
func NewTable(rows []models.GameRecord) *Table {
	t := &Table{rows: rows}

	seen := make(map[string]struct{})
	for i, r := range rows {
		if _, ok := seen[r.TeamHome]; !ok && r.TeamHome != "" {
			seen[r.TeamHome] = struct{}{}
			t.teams = append(t.teams, r.TeamHome)
		}
		if _, ok := seen[r.TeamAway]; !ok && r.TeamAway != "" {
			seen[r.TeamAway] = struct{}{}
			t.teams = append(t.teams, r.TeamAway)
		}
		if i == 0 || r.Season < t.seasonMin {
			t.seasonMin = r.Season
		}
		if i == 0 || r.Season > t.seasonMax {
			t.seasonMax = r.Season
		}
	}
	sort.Strings(t.teams)
	return t
}

// Rows returns the underlying records. Callers must treat the slice and
// its elements as read-only.
func (t *Table) Rows() []models.GameRecord {
	return t.rows
}

// Len returns the number of games in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Teams returns the sorted distinct team names (home and away combined).
func (t *Table) Teams() []string {
	out := make([]string, len(t.teams))
	copy(out, t.teams)
	return out
}

// SeasonBounds returns the minimum and maximum season present.
// Both are zero for an empty table.
func (t *Table) SeasonBounds() (int, int) {
	return t.seasonMin, t.seasonMax
}
