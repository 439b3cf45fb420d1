package census

// ACS 5-year detailed-table variables fetched per place.
// https://api.census.gov/data/2021/acs/acs5/variables.html
const (
	VarTotalPopulation = "B01003_001E"
	VarMedianAge       = "B01002_001E"
	VarMedianIncome    = "B19013_001E"
	VarLaborForce      = "B23025_003E"
	VarEmployed        = "B23025_004E"
	VarAdults25Plus    = "B15003_001E"
	VarBachelors       = "B15003_022E"
)

// PlaceData holds the parsed ACS variables for one census place.
type PlaceData struct {
	Name         string  // e.g. "Seattle city, Washington"
	Population   int
	MedianAge    float64
	MedianIncome int
	LaborForce   int
	Employed     int
	Adults25Plus int
	Bachelors    int
}

// EmploymentRate is employed / labor force, in [0,1]; 0 when the labor force
// is unreported.
func (p PlaceData) EmploymentRate() float64 {
	if p.LaborForce <= 0 {
		return 0
	}
	return float64(p.Employed) / float64(p.LaborForce)
}

// CollegeRate is bachelor's degrees / adults 25+, in [0,1]; 0 when the adult
// population is unreported.
func (p PlaceData) CollegeRate() float64 {
	if p.Adults25Plus <= 0 {
		return 0
	}
	return float64(p.Bachelors) / float64(p.Adults25Plus)
}
