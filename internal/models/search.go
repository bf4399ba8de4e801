// models contains the domain types of the search gateway.
// They are shared by the upstream client, the service layer and the transport.
package models

import "strings"

// DocumentType - kind of document in the Rechtspraak collection.
type DocumentType string

const (
	TypeUitspraak DocumentType = "Uitspraak"
	TypeConclusie DocumentType = "Conclusie"
)

// SortOrder - result ordering by date.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ReturnFormat - payload variant requested from the search endpoint.
type ReturnFormat string

const (
	ReturnAtom ReturnFormat = "atom"
	ReturnDOC  ReturnFormat = "DOC"
)

// SearchFilters - user-chosen search criteria.
//
// Notes:
//   - values are not validated semantically, malformed dates fail upstream;
//   - Max is passed through as is, bounds are not enforced here;
//   - From is a zero-based offset.
type SearchFilters struct {
	Query string

	Type DocumentType

	DateFrom string
	DateTo   string

	ModifiedFrom string
	ModifiedTo   string

	Subjects   []string
	Creators   []string
	Procedures []string

	Max  int
	From int

	Sort   SortOrder
	Return ReturnFormat
}

// HasStructured reports whether any filter other than the free-text query is set.
func (f SearchFilters) HasStructured() bool {
	return f.Type != "" ||
		f.DateFrom != "" || f.DateTo != "" ||
		f.ModifiedFrom != "" || f.ModifiedTo != "" ||
		hasAny(f.Subjects) || hasAny(f.Creators) || hasAny(f.Procedures)
}

// IsEmpty reports whether neither a query nor any structured filter is set.
func (f SearchFilters) IsEmpty() bool {
	return strings.TrimSpace(f.Query) == "" && !f.HasStructured()
}

func hasAny(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}

	return false
}

// ResultEntry - one normalized search hit.
type ResultEntry struct {
	// ID - ECLI identifier.
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	// Updated - ISO-8601 timestamp as sent by upstream.
	Updated string `json:"updated"`
	// Link - absolute URL of the canonical document.
	Link string `json:"link"`
}

// SearchResultPage - one page of results.
// Total counts all matches on the server, not only this page.
type SearchResultPage struct {
	Total   int           `json:"total"`
	Results []ResultEntry `json:"results"`
}
