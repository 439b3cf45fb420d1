package category

import (
	"context"
	"fmt"
	"math"

	"cityscope/internal/types"
)

var safetyKeys = []string{
	"crime_index",
	"safety_score",
	"violent_crime_rate",
	"property_crime_rate",
	"police_response",
	"crime_trend",
	"neighborhood_watch",
}

type safetyResolver struct{}

// NewSafetyResolver builds the table-backed safety resolver.
func NewSafetyResolver() Resolver {
	return safetyResolver{}
}

func (safetyResolver) Category() string {
	return types.CategorySafety
}

func (safetyResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategorySafety, safetyKeys)
}

func (safetyResolver) Resolve(_ context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	p := profileFor(loc.City)
	score := clampScore(p.SafetyScore)

	// Watch-group count rides on the school count, as the reference data does.
	watchGroups := int(math.Round(float64(p.Schools) / 4))

	fields := []types.MetricField{
		{Key: "crime_index", Value: fmt.Sprintf("%.0f", score)},
		{Key: "safety_score", Value: fmt.Sprintf("%.0f%%", score)},
		{Key: "violent_crime_rate", Value: "2.5 per 1,000"},
		{Key: "property_crime_rate", Value: "15.0 per 1,000"},
		{Key: "police_response", Value: "5 min avg"},
		{Key: "crime_trend", Value: formatSigned(p.CrimeTrend) + " YoY"},
		{Key: "neighborhood_watch", Value: fmt.Sprintf("%d active groups", watchGroups)},
	}

	return types.NewCategoryRecord(types.CategorySafety, types.SourceFormula, fields), nil
}
