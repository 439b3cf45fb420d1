// Package assistant answers questions about the active comparison with
// fixed-rule keyword matching. There is no language model here: an ordered
// trigger table picks a canned comparison sentence, and the dataset-backed
// mode runs a substring scan over the building table instead.
package assistant

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cityscope/internal/dataset"
	"cityscope/internal/types"
)

// fallbackAnswer closes the no-trigger path.
const fallbackAnswer = "both locations have their unique advantages. For specific details, please refer to the comparison above."

// rule maps trigger words to a canned comparison sentence. Rules are
// evaluated in order; the first rule with any trigger contained in the
// question wins.
type rule struct {
	triggers []string
	answer   func(one, two *types.LocationRecord) string
}

func rules() []rule {
	return []rule{
		{
			triggers: []string{"school"},
			answer: func(one, two *types.LocationRecord) string {
				winner := pickGreater(one, two, func(r *types.LocationRecord) string {
					return r.Education.Get("avg_school_rating")
				})
				return fmt.Sprintf("%s has higher-rated schools overall.", winner.Parsed.Display())
			},
		},
		{
			triggers: []string{"safe", "crime"},
			answer: func(one, two *types.LocationRecord) string {
				winner := pickGreater(one, two, func(r *types.LocationRecord) string {
					return r.Safety.Get("safety_score")
				})
				return fmt.Sprintf("%s has a higher safety score.", winner.Parsed.Display())
			},
		},
		{
			triggers: []string{"cost", "price", "house"},
			answer: func(one, two *types.LocationRecord) string {
				return fmt.Sprintf("The median home price in %s is %s compared to %s in %s.",
					one.Parsed.Display(), one.RealEstate.Get("median_price"),
					two.RealEstate.Get("median_price"), two.Parsed.Display())
			},
		},
	}
}

// pickGreater returns the record whose metric parses to the numerically
// greater value; ties and unparseable values go to the second record, like
// the reference behavior.
func pickGreater(one, two *types.LocationRecord, metric func(*types.LocationRecord) string) *types.LocationRecord {
	a, okA := parseLeadingNumber(metric(one))
	b, okB := parseLeadingNumber(metric(two))
	if okA && okB && a > b {
		return one
	}
	if okA && !okB {
		return one
	}
	return two
}

// parseLeadingNumber extracts the numeric prefix of a formatted metric, so
// "$825,000" reads as 825000, "82%" as 82, and "-1.8% YoY" as -1.8.
func parseLeadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")

	end := 0
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Matcher answers questions from the two compared records, or from the
// building dataset when one is attached.
type Matcher struct {
	rules  []rule
	store  *dataset.Store
	logger *slog.Logger
}

// NewMatcher builds the record-backed keyword matcher.
func NewMatcher(logger *slog.Logger) *Matcher {
	return &Matcher{
		rules:  rules(),
		logger: logger.With("component", "assistant"),
	}
}

// NewDatasetMatcher builds the dataset-backed matcher: questions search the
// building table instead of triggering canned comparisons.
func NewDatasetMatcher(store *dataset.Store, logger *slog.Logger) *Matcher {
	m := NewMatcher(logger)
	m.store = store
	return m
}

// Answer produces a single answer for a question about the two records.
// Both records must be resolved; the HTTP layer enforces that.
func (m *Matcher) Answer(question string, one, two *types.LocationRecord) string {
	if m.store != nil {
		return m.answerFromDataset(question, one, two)
	}

	prefix := fmt.Sprintf("Based on the comparison between %s and %s, ",
		one.Parsed.Display(), two.Parsed.Display())

	lowered := strings.ToLower(question)
	for _, r := range m.rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lowered, trigger) {
				return prefix + r.answer(one, two)
			}
		}
	}

	m.logger.Debug("no trigger matched", "question", question)
	return prefix + fallbackAnswer
}

// displayLimit caps how many matched rows an answer lists.
const displayLimit = 3

func (m *Matcher) answerFromDataset(question string, one, two *types.LocationRecord) string {
	matches := m.store.Search(question)
	if len(matches) > 0 {
		return describeRows("Buildings matching your question:", matches)
	}

	// No direct hits: list buildings in either compared city instead.
	matches = m.store.FilterByCity(one.Parsed.City, two.Parsed.City)
	if len(matches) > 0 {
		return describeRows(
			fmt.Sprintf("No direct matches; government buildings in %s and %s:",
				one.Parsed.Display(), two.Parsed.Display()),
			matches)
	}

	return fallbackAnswer
}

func describeRows(heading string, rows []dataset.Row) string {
	if len(rows) > displayLimit {
		rows = rows[:displayLimit]
	}

	var b strings.Builder
	b.WriteString(heading)
	for _, r := range rows {
		b.WriteString("\n- ")
		b.WriteString(r.Describe())
	}
	return b.String()
}
