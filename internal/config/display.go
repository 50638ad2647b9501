package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-matchup-service/internal/timeutil"
)

// DisplayConfig controls which dates the board covers and how they are shown.
type DisplayConfig struct {
	Timezone  string
	Days      int
	Season    int
	TeamsFile string
}

func loadDisplay() DisplayConfig {
	return DisplayConfig{
		Timezone:  envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		Days:      intEnvOrDefault(envDisplayDays, defaultDisplayDays),
		Season:    intEnvOrDefault(envSeason, 0),
		TeamsFile: envOrDefault(envTeamsFile, ""),
	}
}

// Location resolves the display time zone. An empty name is UTC; a name the
// tz database does not know yields UTC and an error.
func (d DisplayConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(d.Timezone) == "" {
		return time.UTC, nil
	}
	if loc := timeutil.ResolveTimezone(d.Timezone); loc != nil {
		return loc, nil
	}
	return time.UTC, fmt.Errorf("config: unknown display timezone %q", d.Timezone)
}
