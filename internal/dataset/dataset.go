// Package dataset loads a government building inventory CSV and serves two
// access patterns: exact city/state lookup for the real-estate category and a
// full-table substring scan for the assistant. The table is small and the
// interaction is not latency-sensitive, so there is no indexing.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names expected in the CSV header.
const (
	ColAddress          = "address"
	ColCity             = "city"
	ColState            = "state"
	ColPropertyType     = "property_type"
	ColSquareFootage    = "square_footage"
	ColParkingSpaces    = "parking_spaces"
	ColOwnership        = "ownership"
	ColConstructionDate = "construction_date"
	ColHistoricalStatus = "historical_status"
	ColAccessible       = "accessible"
)

// Store holds the parsed dataset in memory.
type Store struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// Row is one dataset record with column access by name.
type Row struct {
	store  *Store
	values []string
}

// Load reads and parses the CSV at path. Every record must have the header's
// column count; the csv package enforces that.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{ColAddress, ColCity, ColState} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("dataset %s is missing column %q", path, required)
		}
	}

	return &Store{
		header: header,
		index:  index,
		rows:   records[1:],
	}, nil
}

func (s *Store) Len() int {
	return len(s.rows)
}

func (s *Store) Header() []string {
	return s.header
}

func (s *Store) row(i int) Row {
	return Row{store: s, values: s.rows[i]}
}

// FindFirst returns the first row matching city and state exactly,
// case-insensitively. A miss is an outcome, not an error.
func (s *Store) FindFirst(city, state string) (Row, bool) {
	city = strings.ToLower(strings.TrimSpace(city))
	state = strings.ToLower(strings.TrimSpace(state))

	for i := range s.rows {
		r := s.row(i)
		if strings.ToLower(r.Get(ColCity)) == city && strings.ToLower(r.Get(ColState)) == state {
			return r, true
		}
	}
	return Row{}, false
}

// Search scans every column of every row for the query as a case-insensitive
// substring and returns all matching rows in table order. Callers truncate
// for display.
func (s *Store) Search(query string) []Row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []Row
	for i := range s.rows {
		for _, cell := range s.rows[i] {
			if strings.Contains(strings.ToLower(cell), query) {
				matches = append(matches, s.row(i))
				break
			}
		}
	}
	return matches
}

// FilterByCity returns rows whose city column matches any of the given
// cities, case-insensitively.
func (s *Store) FilterByCity(cities ...string) []Row {
	wanted := make(map[string]bool, len(cities))
	for _, c := range cities {
		wanted[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var matches []Row
	for i := range s.rows {
		r := s.row(i)
		if wanted[strings.ToLower(r.Get(ColCity))] {
			matches = append(matches, r)
		}
	}
	return matches
}

// Get returns the value of the named column, or "" for unknown columns.
func (r Row) Get(col string) string {
	if r.store == nil {
		return ""
	}
	i, ok := r.store.index[col]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// Describe renders a one-line summary used by the assistant.
func (r Row) Describe() string {
	return fmt.Sprintf("%s (%s, %s): %s, %s sq ft",
		r.Get(ColAddress), r.Get(ColCity), r.Get(ColState),
		r.Get(ColPropertyType), r.Get(ColSquareFootage))
}
