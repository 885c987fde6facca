package logic

import (
	"context"
	"fmt"
	"sort"

	"github.com/nflcentral/scores-api/internal/dataset"
	"github.com/nflcentral/scores-api/internal/models"
)

type headToHeadService struct {
	table *dataset.Table
}

func NewHeadToHeadService(table *dataset.Table) HeadToHeadService {
	return &headToHeadService{table: table}
}

// Compare returns the shared history of teamA and teamB in either home/away
// configuration. Selection is symmetric: swapping the arguments matches the
// same rows. Returns ErrSameTeam when both sides name the same team and
// ErrNoHistory when the pair never played.
func (s *headToHeadService) Compare(ctx context.Context, teamA, teamB string) (*models.H2HResult, error) {
	if teamA == teamB {
		return nil, fmt.Errorf("%w: %q", ErrSameTeam, teamA)
	}

	var matched []models.GameRecord
	for _, g := range s.table.Rows() {
		if (g.TeamHome == teamA && g.TeamAway == teamB) ||
			(g.TeamHome == teamB && g.TeamAway == teamA) {
			matched = append(matched, g)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s vs %s", ErrNoHistory, teamA, teamB)
	}

	// Display order only: dated games chronologically, undated games after
	// them by season/week.
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch {
		case a.ScheduleDate != nil && b.ScheduleDate != nil:
			return a.ScheduleDate.Before(*b.ScheduleDate)
		case a.ScheduleDate != nil:
			return true
		case b.ScheduleDate != nil:
			return false
		}
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		return a.Week < b.Week
	})

	res := &models.H2HResult{
		TeamA: teamA,
		TeamB: teamB,
		Games: len(matched),
		Rows:  make([]models.H2HGame, 0, len(matched)),
	}

	var totalSum float64
	var totalN int
	for _, g := range matched {
		winner := winnerOf(g)
		switch winner {
		case teamA:
			res.WinsA++
		case teamB:
			res.WinsB++
		default:
			res.Ties++
		}
		if g.TotalPoints != nil {
			totalSum += *g.TotalPoints
			totalN++
		}
		res.Rows = append(res.Rows, models.H2HGame{
			ScheduleDate: g.ScheduleDate,
			Season:       g.Season,
			Week:         g.Week,
			Stadium:      g.Stadium,
			TeamHome:     g.TeamHome,
			ScoreHome:    g.ScoreHome,
			ScoreAway:    g.ScoreAway,
			TeamAway:     g.TeamAway,
			TotalPoints:  g.TotalPoints,
			Phase:        g.Phase,
			Winner:       winner,
		})
	}
	if totalN > 0 {
		res.AvgTotalPoints = totalSum / float64(totalN)
	}

	return res, nil
}

// winnerOf maps the home margin onto the winner partition: home team,
// away team, or the literal "Tie". Missing scores count as a tie since
// the margin cannot favor either side.
func winnerOf(g models.GameRecord) string {
	if g.MarginHome == nil {
		return "Tie"
	}
	switch {
	case *g.MarginHome > 0:
		return g.TeamHome
	case *g.MarginHome < 0:
		return g.TeamAway
	default:
		return "Tie"
	}
}
