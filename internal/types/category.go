package types

// Category names. These are stable across data-source strategies even where
// the field schema is not (real estate).
const (
	CategoryEducation     = "education"
	CategoryRealEstate    = "real_estate"
	CategoryDemographics  = "demographics"
	CategorySafety        = "safety"
	CategoryQualityOfLife = "quality_of_life"
)

// Source tags how a CategoryRecord was produced.
type Source string

const (
	SourceTable       Source = "table"        // static per-city lookup table
	SourceFormula     Source = "formula"      // deterministic arithmetic
	SourceCensus      Source = "census"       // Census ACS API
	SourceMarketIndex Source = "market_index" // index-derived trend arithmetic
	SourceDataset     Source = "dataset"      // local building dataset
	SourceFallback    Source = "fallback"     // resolution failed, placeholders
	SourceNoData      Source = "no_data"      // dataset lookup miss, not an error
)

// Placeholder values. FallbackValue marks a failed resolution, NoDataValue a
// successful lookup that found nothing. The two must stay distinguishable.
const (
	FallbackValue = "N/A"
	NoDataValue   = "No data found"
)

// MetricField is one already-formatted display metric.
type MetricField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CategoryRecord is a closed, ordered set of formatted metrics for one
// category. The field set is fixed per category (and per real-estate
// strategy): every field is present even on fallback, never a subset.
type CategoryRecord struct {
	Category string        `json:"category"`
	Source   Source        `json:"source"`
	Fields   []MetricField `json:"fields"`
}

// NewCategoryRecord builds a record from ordered key/value pairs.
func NewCategoryRecord(category string, source Source, fields []MetricField) CategoryRecord {
	return CategoryRecord{
		Category: category,
		Source:   source,
		Fields:   fields,
	}
}

// NewFallbackRecord fills every field of the category's schema with the
// fallback placeholder.
func NewFallbackRecord(category string, keys []string) CategoryRecord {
	return newPlaceholderRecord(category, SourceFallback, keys, FallbackValue)
}

// NewNoDataRecord fills every field with the "no data" placeholder. Used for
// dataset lookup misses, which are an outcome, not an error.
func NewNoDataRecord(category string, keys []string) CategoryRecord {
	return newPlaceholderRecord(category, SourceNoData, keys, NoDataValue)
}

func newPlaceholderRecord(category string, source Source, keys []string, value string) CategoryRecord {
	fields := make([]MetricField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, MetricField{Key: k, Value: value})
	}
	return CategoryRecord{
		Category: category,
		Source:   source,
		Fields:   fields,
	}
}

// Get returns the value for a field key, or "" if the key is not part of the
// record's schema.
func (r CategoryRecord) Get(key string) string {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Keys returns the record's field keys in display order.
func (r CategoryRecord) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}
