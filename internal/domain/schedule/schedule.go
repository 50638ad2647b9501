package schedule

import (
	"sort"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/domain/odds"
	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// DefaultDays is the number of upcoming calendar dates shown.
const DefaultDays = 2

// DateGroup holds the games starting on one display-zone calendar date.
type DateGroup struct {
	Key   string
	Date  time.Time
	Games []odds.Game
}

// Group keeps games commencing strictly after now, buckets them by calendar
// date in loc and returns the earliest days dates in ascending order. Feed
// order is preserved within a date. Games whose commence time is missing or
// unparseable are skipped. days <= 0 uses DefaultDays; a nil loc is UTC.
func Group(games []odds.Game, now time.Time, loc *time.Location, days int) []DateGroup {
	if days <= 0 {
		days = DefaultDays
	}
	if loc == nil {
		loc = time.UTC
	}

	byKey := make(map[string]*DateGroup)
	for _, g := range games {
		start, err := timeutil.ParseCommenceTime(g.CommenceTime)
		if err != nil || !start.After(now) {
			continue
		}
		date := timeutil.CalendarDate(start, loc)
		key := timeutil.FormatDate(date)
		group, ok := byKey[key]
		if !ok {
			group = &DateGroup{Key: key, Date: date}
			byKey[key] = group
		}
		group.Games = append(group.Games, g)
	}

	groups := make([]DateGroup, 0, len(byKey))
	for _, group := range byKey {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	if len(groups) > days {
		groups = groups[:days]
	}
	return groups
}
