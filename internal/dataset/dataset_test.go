package dataset

import (
	"path/filepath"
	"testing"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Load(filepath.Join("testdata", "buildings.csv"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return store
}

func TestLoad(t *testing.T) {
	store := loadTestStore(t)

	if store.Len() != 10 {
		t.Errorf("Len() = %d, want 10", store.Len())
	}
	if got := len(store.Header()); got != 10 {
		t.Errorf("header has %d columns, want 10", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "does-not-exist.csv")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestFindFirst(t *testing.T) {
	store := loadTestStore(t)

	tests := []struct {
		name        string
		city        string
		state       string
		wantFound   bool
		wantAddress string
	}{
		{
			name:        "first matching row wins",
			city:        "Seattle",
			state:       "WA",
			wantFound:   true,
			wantAddress: "915 2nd Ave",
		},
		{
			name:        "case-insensitive match",
			city:        "portland",
			state:       "or",
			wantFound:   true,
			wantAddress: "1220 SW 3rd Ave",
		},
		{
			name:      "city present but wrong state",
			city:      "Seattle",
			state:     "OR",
			wantFound: false,
		},
		{
			name:      "unknown city",
			city:      "Nowhere",
			state:     "WY",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, found := store.FindFirst(tt.city, tt.state)
			if found != tt.wantFound {
				t.Fatalf("FindFirst(%q, %q) found = %v, want %v", tt.city, tt.state, found, tt.wantFound)
			}
			if found && row.Get(ColAddress) != tt.wantAddress {
				t.Errorf("address = %q, want %q", row.Get(ColAddress), tt.wantAddress)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	store := loadTestStore(t)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "matches across city column", query: "seattle", wantCount: 2},
		{name: "matches property type", query: "courthouse", wantCount: 3},
		{name: "matches ownership column", query: "leased", wantCount: 3},
		{name: "matches partial address", query: "golden gate", wantCount: 1},
		{name: "no matches", query: "zeppelin hangar", wantCount: 0},
		{name: "empty query", query: "   ", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Search(tt.query)
			if len(got) != tt.wantCount {
				t.Errorf("Search(%q) returned %d rows, want %d", tt.query, len(got), tt.wantCount)
			}
		})
	}
}

func TestSearchRowMatchedOnce(t *testing.T) {
	store := loadTestStore(t)

	// "office" appears only in property_type, but a row must never be
	// returned more than once even when several cells match.
	got := store.Search("o")
	seen := make(map[string]int)
	for _, row := range got {
		seen[row.Get(ColAddress)]++
	}
	for addr, n := range seen {
		if n > 1 {
			t.Errorf("row %q returned %d times", addr, n)
		}
	}
}

func TestFilterByCity(t *testing.T) {
	store := loadTestStore(t)

	got := store.FilterByCity("Seattle", "portland")
	if len(got) != 4 {
		t.Fatalf("FilterByCity returned %d rows, want 4", len(got))
	}
	for _, row := range got {
		city := row.Get(ColCity)
		if city != "Seattle" && city != "Portland" {
			t.Errorf("unexpected city %q in filtered rows", city)
		}
	}
}

func TestRowDescribe(t *testing.T) {
	store := loadTestStore(t)

	row, found := store.FindFirst("Cheyenne", "WY")
	if !found {
		t.Fatal("expected to find Cheyenne row")
	}

	want := "2120 Capitol Ave (Cheyenne, WY): Courthouse, 132000 sq ft"
	if got := row.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
