package category

import (
	"context"
	"fmt"
	"math"

	"cityscope/internal/types"
)

var qualityOfLifeKeys = []string{
	"walkability",
	"air_quality",
	"parks_nearby",
	"restaurants",
	"commute_time",
	"public_transit",
	"healthcare_access",
}

type qualityOfLifeResolver struct{}

// NewQualityOfLifeResolver builds the formula-backed quality-of-life
// resolver. It is the only resolver that consumes coordinates; it degrades to
// the coordinate-free formula when given the sentinel (0,0).
func NewQualityOfLifeResolver() Resolver {
	return qualityOfLifeResolver{}
}

func (qualityOfLifeResolver) Category() string {
	return types.CategoryQualityOfLife
}

func (qualityOfLifeResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryQualityOfLife, qualityOfLifeKeys)
}

func (qualityOfLifeResolver) Resolve(_ context.Context, loc types.ParsedLocation, coords types.Coords) (types.CategoryRecord, error) {
	p := profileFor(loc.City)

	walk := clampScore(p.WalkScore)
	transit := clampScore(p.TransitScore)

	// Air quality starts from a fixed national baseline; with real
	// coordinates it degrades slightly with distance from the temperate
	// band around 40°N. With the sentinel it stays at the baseline.
	air := 90.0
	if !coords.IsSentinel() {
		air = clampScore(90 - math.Abs(coords.Latitude-40)/2)
	}

	healthcare := clampScore((walk + p.SafetyScore) / 2)

	fields := []types.MetricField{
		{Key: "walkability", Value: fmt.Sprintf("%.0f/100", walk)},
		{Key: "air_quality", Value: fmt.Sprintf("%.0f/100", air)},
		{Key: "parks_nearby", Value: fmt.Sprintf("%d", int(math.Round(walk/8)))},
		{Key: "restaurants", Value: fmt.Sprintf("%d", int(math.Round(walk*3)))},
		{Key: "commute_time", Value: "25 min avg"},
		{Key: "public_transit", Value: fmt.Sprintf("%.0f/100", transit)},
		{Key: "healthcare_access", Value: fmt.Sprintf("%.0f/100", healthcare)},
	}

	return types.NewCategoryRecord(types.CategoryQualityOfLife, types.SourceFormula, fields), nil
}
