package category

import (
	"context"
	"fmt"
	"math"

	"cityscope/internal/dataset"
	"cityscope/internal/providers/marketindex"
	"cityscope/internal/types"
)

// The real-estate category is polymorphic: the category name is stable but
// the field schema depends on the active data-source strategy, so each
// strategy is its own resolver with its own key set.

var realEstateMarketKeys = []string{
	"median_price",
	"price_trend",
	"avg_days_on_market",
	"price_per_sqft",
	"inventory",
	"new_listings",
	"price_cuts",
}

var realEstateDatasetKeys = []string{
	"address",
	"property_type",
	"square_footage",
	"parking_spaces",
	"ownership",
	"construction_date",
	"historical_status",
	"accessible",
}

type syntheticRealEstateResolver struct{}

// NewSyntheticRealEstateResolver builds the formula-backed real-estate
// resolver: all metrics derive from the per-city profile.
func NewSyntheticRealEstateResolver() Resolver {
	return syntheticRealEstateResolver{}
}

func (syntheticRealEstateResolver) Category() string {
	return types.CategoryRealEstate
}

func (syntheticRealEstateResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryRealEstate, realEstateMarketKeys)
}

func (syntheticRealEstateResolver) Resolve(_ context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	p := profileFor(loc.City)
	fields := marketFields(p, p.PriceTrend, 30, 10)
	return types.NewCategoryRecord(types.CategoryRealEstate, types.SourceFormula, fields), nil
}

// CloseProvider is the market-index source.
type CloseProvider interface {
	GetMonthlyCloses(ctx context.Context, symbol string) ([]float64, error)
}

type marketIndexRealEstateResolver struct {
	provider CloseProvider
	symbol   string
}

// NewMarketIndexRealEstateResolver builds the index-backed real-estate
// resolver: the city profile supplies the price level and the housing index
// supplies trend and volatility.
func NewMarketIndexRealEstateResolver(provider CloseProvider, symbol string) Resolver {
	return marketIndexRealEstateResolver{provider: provider, symbol: symbol}
}

func (marketIndexRealEstateResolver) Category() string {
	return types.CategoryRealEstate
}

func (marketIndexRealEstateResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryRealEstate, realEstateMarketKeys)
}

func (r marketIndexRealEstateResolver) Resolve(ctx context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	closes, err := r.provider.GetMonthlyCloses(ctx, r.symbol)
	if err != nil {
		return types.CategoryRecord{}, fmt.Errorf("market index %s: %w", r.symbol, err)
	}

	stats, err := marketindex.ComputeStats(closes)
	if err != nil {
		return types.CategoryRecord{}, fmt.Errorf("market index %s: %w", r.symbol, err)
	}

	p := profileFor(loc.City)
	daysOnMarket := 30 + int(math.Round(stats.VolatilityPercent))
	priceCuts := int(math.Round(clampScore(10 + stats.VolatilityPercent)))

	fields := marketFields(p, stats.TrendPercent, daysOnMarket, priceCuts)
	return types.NewCategoryRecord(types.CategoryRealEstate, types.SourceMarketIndex, fields), nil
}

// marketFields renders the market-schema metrics shared by the synthetic and
// index-backed strategies.
func marketFields(p cityProfile, trendPercent float64, daysOnMarket, priceCuts int) []types.MetricField {
	direction := "increase"
	if trendPercent < 0 {
		direction = "decrease"
	}

	return []types.MetricField{
		{Key: "median_price", Value: formatMoney(p.MedianPrice)},
		{Key: "price_trend", Value: fmt.Sprintf("%.1f%% %s", math.Abs(trendPercent), direction)},
		{Key: "avg_days_on_market", Value: fmt.Sprintf("%d", daysOnMarket)},
		{Key: "price_per_sqft", Value: formatMoney(int(math.Round(float64(p.MedianPrice) / 1500)))},
		// Inventory rides on the school count, as the reference data does.
		{Key: "inventory", Value: fmt.Sprintf("%d", p.Schools*4)},
		{Key: "new_listings", Value: "+15% YoY"},
		{Key: "price_cuts", Value: fmt.Sprintf("%d%% of listings", priceCuts)},
	}
}

// BuildingStore is the dataset source.
type BuildingStore interface {
	FindFirst(city, state string) (dataset.Row, bool)
}

type datasetRealEstateResolver struct {
	store BuildingStore
}

// NewDatasetRealEstateResolver builds the dataset-backed real-estate
// resolver: the first building matching the city and state wins. A lookup
// miss yields the distinct "no data" record, not an error.
func NewDatasetRealEstateResolver(store BuildingStore) Resolver {
	return datasetRealEstateResolver{store: store}
}

func (datasetRealEstateResolver) Category() string {
	return types.CategoryRealEstate
}

func (datasetRealEstateResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryRealEstate, realEstateDatasetKeys)
}

func (r datasetRealEstateResolver) Resolve(_ context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	row, found := r.store.FindFirst(loc.City, loc.State)
	if !found {
		return types.NewNoDataRecord(types.CategoryRealEstate, realEstateDatasetKeys), nil
	}

	fields := []types.MetricField{
		{Key: "address", Value: row.Get(dataset.ColAddress)},
		{Key: "property_type", Value: row.Get(dataset.ColPropertyType)},
		{Key: "square_footage", Value: row.Get(dataset.ColSquareFootage) + " sq ft"},
		{Key: "parking_spaces", Value: row.Get(dataset.ColParkingSpaces)},
		{Key: "ownership", Value: row.Get(dataset.ColOwnership)},
		{Key: "construction_date", Value: row.Get(dataset.ColConstructionDate)},
		{Key: "historical_status", Value: row.Get(dataset.ColHistoricalStatus)},
		{Key: "accessible", Value: row.Get(dataset.ColAccessible)},
	}

	return types.NewCategoryRecord(types.CategoryRealEstate, types.SourceDataset, fields), nil
}
