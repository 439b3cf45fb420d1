package category

import (
	"context"
	"errors"
	"testing"

	"cityscope/internal/providers/census"
	"cityscope/internal/types"
)

type fakePlaceProvider struct {
	data *census.PlaceData
	err  error
}

func (f fakePlaceProvider) GetPlaceData(context.Context, string, string) (*census.PlaceData, error) {
	return f.data, f.err
}

func TestDemographics(t *testing.T) {
	provider := fakePlaceProvider{
		data: &census.PlaceData{
			Name:         "Seattle city, Washington",
			Population:   733919,
			MedianAge:    35.5,
			MedianIncome: 105391,
			LaborForce:   450000,
			Employed:     427500,
			Adults25Plus: 580000,
			Bachelors:    261000,
		},
	}
	r := NewDemographicsResolver(provider)

	rec, err := r.Resolve(context.Background(), wa("Seattle"), types.SentinelCoords())
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"population", "733,919"},
		{"population_growth", "1.5% annual"},
		{"median_age", "35.5"},
		{"median_income", "$105,391"},
		{"education_level", "45% college degree"},
		{"employment_rate", "95%"},
		{"diversity_index", "75/100"},
	}
	for _, tt := range tests {
		if got := rec.Get(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
	if rec.Source != types.SourceCensus {
		t.Errorf("Source = %q, want %q", rec.Source, types.SourceCensus)
	}
}

func TestDemographicsProviderFailure(t *testing.T) {
	r := NewDemographicsResolver(fakePlaceProvider{err: errors.New("census down")})

	if _, err := r.Resolve(context.Background(), wa("Seattle"), types.SentinelCoords()); err == nil {
		t.Fatal("Resolve() expected error when census fetch fails")
	}
}

func TestDemographicsMissingFIPS(t *testing.T) {
	r := NewDemographicsResolver(fakePlaceProvider{})

	loc := types.ParsedLocation{City: "Seattle", State: "WA"}
	if _, err := r.Resolve(context.Background(), loc, types.SentinelCoords()); err == nil {
		t.Fatal("Resolve() expected error for missing FIPS code")
	}
}
