package types

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// SentinelCoords means "geocoding unavailable", not a real point off the
// coast of Africa. Consumers must degrade gracefully when they see it.
func SentinelCoords() Coords {
	return Coords{}
}

func (c Coords) IsSentinel() bool {
	return c.Latitude == 0 && c.Longitude == 0
}
