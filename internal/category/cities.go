package category

import "strings"

// cityProfile carries hand-tuned baseline metrics for a known city. The
// lookup key is the lowercased city name only; state is deliberately ignored,
// so "Portland, ME" resolves to the same profile as "Portland, OR".
type cityProfile struct {
	EducationRating float64 // 0-10 scale
	Schools         int
	MedianPrice     int     // dollars
	PriceTrend      float64 // % YoY
	SafetyScore     float64 // 0-100 scale
	CrimeTrend      float64 // % YoY
	WalkScore       float64 // 0-100 scale
	TransitScore    float64 // 0-100 scale
}

var cityProfiles = map[string]cityProfile{
	"seattle": {
		EducationRating: 8.5,
		Schools:         102,
		MedianPrice:     825000,
		PriceTrend:      3.2,
		SafetyScore:     82,
		CrimeTrend:      -2.5,
		WalkScore:       88,
		TransitScore:    85,
	},
	"portland": {
		EducationRating: 7.8,
		Schools:         85,
		MedianPrice:     575000,
		PriceTrend:      4.1,
		SafetyScore:     78,
		CrimeTrend:      -1.8,
		WalkScore:       82,
		TransitScore:    75,
	},
	"san francisco": {
		EducationRating: 8.2,
		Schools:         125,
		MedianPrice:     1250000,
		PriceTrend:      2.8,
		SafetyScore:     75,
		CrimeTrend:      -3.2,
		WalkScore:       92,
		TransitScore:    90,
	},
}

// baselineProfile covers every city absent from the table.
var baselineProfile = cityProfile{
	EducationRating: 7.5,
	Schools:         50,
	MedianPrice:     450000,
	PriceTrend:      3.0,
	SafetyScore:     75,
	CrimeTrend:      -1.0,
	WalkScore:       70,
	TransitScore:    65,
}

func profileFor(city string) cityProfile {
	if p, ok := cityProfiles[strings.ToLower(strings.TrimSpace(city))]; ok {
		return p
	}
	return baselineProfile
}
