package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/app/board"
	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/matchups"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

const (
	Title    = "MLB Odds & Probable Pitchers Dashboard"
	Subtitle = "Data sourced from The Odds API and SportsDataIO"

	dateHeaderLayout = "Monday, Jan 02, 2006"
	startTimeLayout  = "Monday, Jan 02, 2006 at 3:04 PM MST"

	msgUnknownTeams     = "Unknown teams"
	msgUnknownTime      = "Unknown time"
	msgPitchersMissing  = "Probable pitchers info not found."
	msgTeamsUnresolved  = "Could not identify teams properly for pitchers info."
	msgNoOdds           = "No bookmaker odds available."
	msgUnknownBookmaker = "Unknown"
	separator           = "---"
)

// Markdown writes the full dashboard for b. Start times are shown in loc; a
// nil loc is UTC.
func Markdown(w io.Writer, b board.Board, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	var buf bytes.Buffer
	block(&buf, "# "+Title)
	block(&buf, Subtitle)
	for _, d := range b.Dates {
		writeDate(&buf, d, loc)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// MarkdownString is Markdown into a string.
func MarkdownString(b board.Board, loc *time.Location) string {
	var sb strings.Builder
	_ = Markdown(&sb, b, loc)
	return sb.String()
}

// FetchError is the message shown when a board could not be built at all.
func FetchError(err error) string {
	return fmt.Sprintf("Error fetching data: %v", err)
}

func writeDate(buf *bytes.Buffer, d board.DateBoard, loc *time.Location) {
	header := d.Date
	if day, err := timeutil.ParseDate(d.Date); err == nil {
		header = day.Format(dateHeaderLayout)
	}
	block(buf, "## Odds for "+header)
	if d.LineupsUnavailable {
		block(buf, "> **Warning:** "+d.LineupError)
	}
	for _, g := range d.Games {
		writeGame(buf, g, loc)
	}
}

func writeGame(buf *bytes.Buffer, g matchups.MatchupResult, loc *time.Location) {
	block(buf, "### "+TeamHeader(g))
	block(buf, "_Start time: "+StartTime(g, loc)+"_")

	switch {
	case !g.TeamsIdentified:
		block(buf, msgTeamsUnresolved)
	case !g.PitchersFound || g.AwayPitcher == nil || g.HomePitcher == nil:
		block(buf, msgPitchersMissing)
	default:
		block(buf, "**Probable Pitchers:**")
		lines := []string{
			"- " + PitcherLine(g.AwayPitcher.Comparison),
			"- " + PitcherLine(g.HomePitcher.Comparison),
		}
		block(buf, strings.Join(lines, "\n"))
	}

	if !g.HasOdds {
		block(buf, msgNoOdds)
	} else {
		title := g.Bookmaker
		if title == "" {
			title = msgUnknownBookmaker
		}
		block(buf, "**Bookmaker:** "+title)
		for _, o := range g.Outcomes {
			block(buf, OutcomeLine(o))
		}
	}
	block(buf, separator)
}

// TeamHeader renders "Away [W-L, A] vs Home [W-L, H]".
func TeamHeader(g matchups.MatchupResult) string {
	if !g.TeamsIdentified {
		return msgUnknownTeams
	}
	return fmt.Sprintf("%s [%s, A] vs %s [%s, H]", g.Away.Name, g.Away.Record, g.Home.Name, g.Home.Record)
}

// StartTime renders the local first pitch, e.g. "Friday, Jul 04, 2025 at 7:05 PM EDT".
func StartTime(g matchups.MatchupResult, loc *time.Location) string {
	if g.CommenceTime == nil {
		return msgUnknownTime
	}
	if loc == nil {
		loc = time.UTC
	}
	return g.CommenceTime.In(loc).Format(startTimeLayout)
}

// PitcherLine renders a comparison with its emphasis.
func PitcherLine(c *matchups.Comparison) string {
	if c == nil {
		return ""
	}
	text := fmt.Sprintf("%s (ERA: %s)", c.Label, c.ERA)
	if !c.Bold {
		return text
	}
	if color := c.Tier.Color(); color != "" {
		text = fmt.Sprintf("<span style='color:%s'>%s</span>", color, text)
	}
	return "**" + text + "**"
}

// OutcomeLine renders one bookmaker outcome. Numeric prices carry the market
// marker and advisory; text prices are shown as sent.
func OutcomeLine(o matchups.OutcomeResult) string {
	var icon string
	switch o.Marker {
	case matchups.MarkerFavorite:
		icon = "🟢"
	case matchups.MarkerUnderdog:
		icon = "🟡"
	default:
		return fmt.Sprintf("%s: %s", o.TeamName, o.Price)
	}
	line := fmt.Sprintf("%s **%s**: %s", icon, o.TeamName, o.Price)
	if o.Advisory != matchups.AdvisoryNone {
		line += " (" + string(o.Advisory) + ")"
	}
	return line
}

func block(buf *bytes.Buffer, text string) {
	buf.WriteString(text)
	buf.WriteString("\n\n")
}
