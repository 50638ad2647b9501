package standings

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is the record placeholder for teams missing from standings.
const NotAvailable = "N/A"

// TeamRecord is one row of the standings feed.
type TeamRecord struct {
	Key    string `json:"key"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Record is a win-loss pair.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// String renders the record as "W-L".
func (r Record) String() string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// Store answers record lookups by canonical team code.
type Store struct {
	records map[string]Record
}

// NewStore indexes standings rows by team key. Later rows overwrite earlier
// rows with the same key.
func NewStore(rows []TeamRecord) *Store {
	records := make(map[string]Record, len(rows))
	for _, row := range rows {
		records[row.Key] = Record{Wins: row.Wins, Losses: row.Losses}
	}
	return &Store{records: records}
}

// Lookup returns the record for code when present.
func (s *Store) Lookup(code string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	rec, ok := s.records[code]
	return rec, ok
}

// RecordFor returns the "W-L" record string for code, or NotAvailable.
func (s *Store) RecordFor(code string) string {
	rec, ok := s.Lookup(code)
	if !ok {
		return NotAvailable
	}
	return rec.String()
}

// Len reports how many teams have records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// WinsOf parses the win count from a "W-L" record string. Anything that does
// not start with an integer before the first '-' yields 0.
func WinsOf(record string) int {
	head, _, _ := strings.Cut(record, "-")
	wins, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return wins
}
