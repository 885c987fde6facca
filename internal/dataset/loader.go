package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nflcentral/scores-api/internal/models"
)

// ErrMissingFile is returned by Load when the source file does not exist.
// Load-time errors are fatal: nothing downstream can run without the table.
var ErrMissingFile = errors.New("data file not found")

// MissingColumnsError lists required header columns absent from the source
// file. Column names are contract; renaming any of them is a breaking change.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	"score_home", "score_away", "season", "week",
	"over_under_line", "spread_favorite", "team_home", "team_away",
}

// Optional columns
const (
	colScheduleDate    = "schedule_date"
	colSchedulePlayoff = "schedule_playoff"
	colStadium         = "stadium"
)

// playoffTokens are the values of schedule_playoff recognized as truthy,
// matched case-insensitively. The source data mixes locales.
var playoffTokens = map[string]bool{
	"1": true, "true": true, "yes": true, "y": true, "si": true, "sí": true,
}

// dateLayouts tried in order when parsing schedule_date.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
}

// Load parses the CSV at path into a normalized Table.
//
// Required columns missing from the header fail with *MissingColumnsError;
// an absent file fails with ErrMissingFile. Numeric coercion failures in
// data cells become missing values (nil), never an error. Calendar fields
// derive from schedule_date when it parses, otherwise from season/week.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	_, hasDate := idx[colScheduleDate]
	_, hasPlayoff := idx[colSchedulePlayoff]
	_, hasStadium := idx[colStadium]

	var rows []models.GameRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		g := models.GameRecord{
			Season:         parseIntField(field("season")),
			Week:           parseIntField(field("week")),
			TeamHome:       field("team_home"),
			TeamAway:       field("team_away"),
			ScoreHome:      parseFloatField(field("score_home")),
			ScoreAway:      parseFloatField(field("score_away")),
			OverUnderLine:  parseFloatField(field("over_under_line")),
			SpreadFavorite: parseFloatField(field("spread_favorite")),
			Stadium:        "Unknown",
		}

		if hasStadium {
			if s := field(colStadium); s != "" {
				g.Stadium = s
			}
		}

		if hasDate {
			g.ScheduleDate = parseDateField(field(colScheduleDate))
		}
		deriveCalendar(&g)

		if g.ScoreHome != nil && g.ScoreAway != nil {
			total := *g.ScoreHome + *g.ScoreAway
			margin := *g.ScoreHome - *g.ScoreAway
			g.TotalPoints = &total
			g.MarginHome = &margin
		}

		if hasPlayoff {
			g.Playoff = playoffTokens[strings.ToLower(field(colSchedulePlayoff))]
		}
		if g.Playoff {
			g.Phase = models.PhasePlayoffs
		} else {
			g.Phase = models.PhaseRegular
		}

		rows = append(rows, g)
	}

	return NewTable(rows), nil
}

// deriveCalendar fills Year, MonthYear and WeekOfYear. Rows with a parsed
// schedule date use the calendar; the rest fall back to season/week.
func deriveCalendar(g *models.GameRecord) {
	if g.ScheduleDate != nil {
		d := *g.ScheduleDate
		g.Year = d.Year()
		g.MonthYear = d.Format("2006-01")
		_, g.WeekOfYear = d.ISOWeek()
		return
	}
	g.Year = g.Season
	g.MonthYear = strconv.Itoa(g.Season)
	g.WeekOfYear = g.Week
}

func parseFloatField(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntField(s string) int {
	if s == "" {
		return 0
	}
	// Some exports carry integer columns as floats ("2015.0").
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

func parseDateField(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
