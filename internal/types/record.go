package types

import "time"

// LocationRecord is the merged result of one location resolution. It is
// created fresh per comparison and superseded, never mutated, by the next
// one.
type LocationRecord struct {
	Query         string         `json:"query"`
	Parsed        ParsedLocation `json:"parsed"`
	Coords        Coords         `json:"coords"`
	Education     CategoryRecord `json:"education"`
	RealEstate    CategoryRecord `json:"real_estate"`
	Demographics  CategoryRecord `json:"demographics"`
	Safety        CategoryRecord `json:"safety"`
	QualityOfLife CategoryRecord `json:"quality_of_life"`
	ResolvedAt    time.Time      `json:"resolved_at"`
}

// Categories returns the five category records in display order.
func (r *LocationRecord) Categories() []CategoryRecord {
	return []CategoryRecord{
		r.Education,
		r.RealEstate,
		r.Demographics,
		r.Safety,
		r.QualityOfLife,
	}
}

// ChatEntry is one question/answer exchange with the assistant. Entries are
// append-only for the lifetime of a session.
type ChatEntry struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}
