package category

import (
	"context"
	"reflect"
	"testing"

	"cityscope/internal/types"
)

func wa(city string) types.ParsedLocation {
	return types.ParsedLocation{City: city, State: "WA", StateFIPS: "53"}
}

// Every resolver must return exactly its fixed field set, in order, whether
// the city is known or not.
func TestResolversReturnClosedFieldSets(t *testing.T) {
	resolvers := []struct {
		name     string
		resolver Resolver
	}{
		{name: "education", resolver: NewEducationResolver()},
		{name: "safety", resolver: NewSafetyResolver()},
		{name: "quality_of_life", resolver: NewQualityOfLifeResolver()},
		{name: "real_estate synthetic", resolver: NewSyntheticRealEstateResolver()},
	}

	cities := []string{"Seattle", "Portland", "Nowhereville"}

	for _, tc := range resolvers {
		t.Run(tc.name, func(t *testing.T) {
			wantKeys := tc.resolver.Fallback().Keys()

			for _, city := range cities {
				rec, err := tc.resolver.Resolve(context.Background(), wa(city), types.SentinelCoords())
				if err != nil {
					t.Fatalf("Resolve(%q) unexpected error: %v", city, err)
				}
				if got := rec.Keys(); !reflect.DeepEqual(got, wantKeys) {
					t.Errorf("Resolve(%q) keys = %v, want %v", city, got, wantKeys)
				}
				for _, f := range rec.Fields {
					if f.Value == "" {
						t.Errorf("Resolve(%q) field %q is empty", city, f.Key)
					}
				}
			}
		})
	}
}

// Formula-backed resolvers are pure: same inputs, same record, every time.
func TestResolversAreDeterministic(t *testing.T) {
	resolvers := []Resolver{
		NewEducationResolver(),
		NewSafetyResolver(),
		NewQualityOfLifeResolver(),
		NewSyntheticRealEstateResolver(),
	}

	coords := types.NewCoords(47.6062, -122.3321)
	for _, r := range resolvers {
		t.Run(r.Category(), func(t *testing.T) {
			first, err := r.Resolve(context.Background(), wa("Seattle"), coords)
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			second, err := r.Resolve(context.Background(), wa("Seattle"), coords)
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("resolver %s is not deterministic:\n%+v\n%+v", r.Category(), first, second)
			}
		})
	}
}

func TestFallbackRecordsAreComplete(t *testing.T) {
	resolvers := []Resolver{
		NewEducationResolver(),
		NewSafetyResolver(),
		NewQualityOfLifeResolver(),
		NewSyntheticRealEstateResolver(),
		NewDemographicsResolver(nil),
	}

	for _, r := range resolvers {
		t.Run(r.Category(), func(t *testing.T) {
			fb := r.Fallback()
			if fb.Source != types.SourceFallback {
				t.Errorf("Fallback().Source = %q, want %q", fb.Source, types.SourceFallback)
			}
			if len(fb.Fields) == 0 {
				t.Fatal("Fallback() has no fields")
			}
			for _, f := range fb.Fields {
				if f.Value != types.FallbackValue {
					t.Errorf("field %q = %q, want %q", f.Key, f.Value, types.FallbackValue)
				}
			}
		})
	}
}

func TestProfileFor(t *testing.T) {
	tests := []struct {
		name       string
		city       string
		wantRating float64
	}{
		{name: "known city", city: "Seattle", wantRating: 8.5},
		{name: "case-insensitive", city: "sAn FrAnCiScO", wantRating: 8.2},
		{name: "state ignored in key", city: "Portland", wantRating: 7.8},
		{name: "unknown city gets baseline", city: "Walla Walla", wantRating: 7.5},
		{name: "whitespace trimmed", city: "  seattle  ", wantRating: 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profileFor(tt.city); got.EducationRating != tt.wantRating {
				t.Errorf("profileFor(%q).EducationRating = %v, want %v", tt.city, got.EducationRating, tt.wantRating)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "money grouping", got: formatMoney(825000), want: "$825,000"},
		{name: "money millions", got: formatMoney(1250000), want: "$1,250,000"},
		{name: "money small", got: formatMoney(550), want: "$550"},
		{name: "thousands", got: formatThousands(733919), want: "733,919"},
		{name: "signed positive", got: formatSigned(3.2), want: "+3.2%"},
		{name: "signed negative", got: formatSigned(-1.8), want: "-1.8%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "in range", input: 82, want: 82},
		{name: "above", input: 140, want: 100},
		{name: "below", input: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampScore(tt.input); got != tt.want {
				t.Errorf("clampScore(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
