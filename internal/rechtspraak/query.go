package rechtspraak

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
)

// Query-string vocabulary of the search endpoint.
const (
	paramQuery     = "q"
	paramType      = "type"
	paramDate      = "date"
	paramModified  = "modified"
	paramSubject   = "subject"
	paramCreator   = "creator"
	paramProcedure = "procedure"
	paramMax       = "max"
	paramFrom      = "from"
	paramSort      = "sort"
	paramReturn    = "return"

	sortByDate = "date"

	modifiedLayout = "2006-01-02T15:04:05"
)

// modifiedInputLayouts - accepted shapes of a modification bound.
// The browser datetime-local control sends minutes only.
var modifiedInputLayouts = []string{
	"2006-01-02T15:04",
	modifiedLayout,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// BuildQuery maps filters to the query parameters of the search endpoint.
//
// Rules:
//   - q only when no structured filter is present, upstream answers 502 on the combination;
//   - every date/modified bound is a separate repeated parameter;
//   - from is omitted at zero, sort=date only for DESC;
//   - return is always set so that the response is parseable XML.
//
// Values are not validated: malformed input reaches upstream and fails there.
func BuildQuery(f models.SearchFilters) url.Values {
	v := url.Values{}

	if q := strings.TrimSpace(f.Query); q != "" && !f.HasStructured() {
		v.Set(paramQuery, q)
	}

	if f.Type != "" {
		v.Set(paramType, string(f.Type))
	}

	addAll(v, paramDate, f.DateFrom, f.DateTo)
	addAll(v, paramModified, normalizeModified(f.ModifiedFrom), normalizeModified(f.ModifiedTo))
	addAll(v, paramSubject, f.Subjects...)
	addAll(v, paramCreator, f.Creators...)
	addAll(v, paramProcedure, f.Procedures...)

	if f.Max > 0 {
		v.Set(paramMax, strconv.Itoa(f.Max))
	}

	if f.From > 0 {
		v.Set(paramFrom, strconv.Itoa(f.From))
	}

	if f.Sort == models.SortDesc {
		v.Set(paramSort, sortByDate)
	}

	ret := f.Return
	if ret == "" {
		ret = models.ReturnAtom
	}
	v.Set(paramReturn, string(ret))

	return v
}

// FiltersFromQuery reads a query string in the upstream vocabulary back into filters.
// Only max and from are parsed, everything else passes through as text.
func FiltersFromQuery(v url.Values) (models.SearchFilters, error) {
	f := models.SearchFilters{
		Query:      strings.TrimSpace(v.Get(paramQuery)),
		Type:       models.DocumentType(strings.TrimSpace(v.Get(paramType))),
		Subjects:   v[paramSubject],
		Creators:   v[paramCreator],
		Procedures: v[paramProcedure],
	}

	f.DateFrom, f.DateTo = bounds(v[paramDate])
	f.ModifiedFrom, f.ModifiedTo = bounds(v[paramModified])

	var err error
	if f.Max, err = intParam(v, paramMax); err != nil {
		return models.SearchFilters{}, err
	}
	if f.From, err = intParam(v, paramFrom); err != nil {
		return models.SearchFilters{}, err
	}

	switch strings.ToLower(strings.TrimSpace(v.Get(paramSort))) {
	case sortByDate, "desc":
		f.Sort = models.SortDesc
	default:
		f.Sort = models.SortAsc
	}

	if strings.EqualFold(v.Get(paramReturn), string(models.ReturnDOC)) {
		f.Return = models.ReturnDOC
	}

	return f, nil
}

// normalizeModified brings a modification bound to YYYY-MM-DDTHH:MM:SS.
// Unrecognised values pass through trimmed.
func normalizeModified(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, l := range modifiedInputLayouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.Format(modifiedLayout)
		}
	}

	return value
}

func addAll(v url.Values, key string, values ...string) {
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			v.Add(key, s)
		}
	}
}

func bounds(values []string) (string, string) {
	var from, to string
	if len(values) > 0 {
		from = values[0]
	}
	if len(values) > 1 {
		to = values[1]
	}

	return from, to
}

func intParam(v url.Values, key string) (int, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q must be a non-negative integer", ErrInvalidParameter, key)
	}

	return n, nil
}
