// Package location parses free-text "City, ST" queries into normalized
// locations. The city is accepted as-is (no registry check); the state must
// belong to the fixed US state/territory set.
package location

import (
	"errors"
	"strings"

	"cityscope/internal/types"
)

var (
	// ErrMissingComma is returned when the query has no comma separator.
	ErrMissingComma = errors.New("location must be in \"City, ST\" form")
	// ErrEmptyCity is returned when the part before the comma is blank.
	ErrEmptyCity = errors.New("city is empty")
	// ErrEmptyState is returned when the part after the comma is blank.
	ErrEmptyState = errors.New("state is empty")
	// ErrUnknownState is returned for a designator outside the US
	// state/territory set. Distinct from a malformed query by contract.
	ErrUnknownState = errors.New("unknown state code")
)

// Parse splits a raw query on the first comma and validates the state
// designator. A 2-letter postal code or a full state name is accepted; the
// result always carries the 2-letter code.
func Parse(raw string) (types.ParsedLocation, error) {
	city, rest, found := strings.Cut(raw, ",")
	if !found {
		return types.ParsedLocation{}, ErrMissingComma
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return types.ParsedLocation{}, ErrEmptyCity
	}

	designator := strings.TrimSpace(rest)
	if designator == "" {
		return types.ParsedLocation{}, ErrEmptyState
	}

	state, ok := LookupState(designator)
	if !ok {
		return types.ParsedLocation{}, ErrUnknownState
	}

	return types.ParsedLocation{
		City:      city,
		State:     state.Code,
		StateFIPS: state.FIPS,
	}, nil
}
