// Package category holds the five life-quality resolvers. Each resolver maps
// a parsed location (plus advisory coordinates) to a closed, fully-populated
// record of formatted metrics. Resolution failures are reported to the
// aggregator, which substitutes the resolver's fallback record; a failure in
// one category never affects another.
package category

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"cityscope/internal/types"
)

// Resolver produces one category's record for a location.
type Resolver interface {
	// Category returns the stable category name.
	Category() string
	// Fallback returns the category's fully-populated placeholder record.
	Fallback() types.CategoryRecord
	// Resolve computes the record. Coordinates may be the sentinel (0,0);
	// resolvers must still produce bounded, plausible values.
	Resolve(ctx context.Context, loc types.ParsedLocation, coords types.Coords) (types.CategoryRecord, error)
}

// clampScore bounds percentage-like scores into [0,100].
func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// formatMoney renders a dollar amount with thousands separators: $825,000.
func formatMoney(amount int) string {
	return "$" + formatThousands(amount)
}

func formatThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}

// formatSigned renders a percentage with an explicit sign: +3.2% or -1.8%.
func formatSigned(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
