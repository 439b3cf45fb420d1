package types

// ParsedLocation is a normalized "City, ST" query. State is always a 2-letter
// postal code; StateFIPS is the census state code used by the demographics
// resolver.
type ParsedLocation struct {
	City      string `json:"city"`
	State     string `json:"state"`
	StateFIPS string `json:"-"`
}

// Display renders the location as "City, ST".
func (l ParsedLocation) Display() string {
	return l.City + ", " + l.State
}
