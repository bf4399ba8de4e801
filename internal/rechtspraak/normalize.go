package rechtspraak

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/rolfvandort/Rolfiessuperzoekert/internal/models"
)

// Fallbacks for absent entry fields.
const (
	FallbackID      = "ID Onbekend"
	FallbackTitle   = "Titel Onbekend"
	FallbackLink    = "#"
	FallbackSummary = "Geen samenvatting beschikbaar."
)

var reDigits = regexp.MustCompile(`[0-9]+`)

// Normalize turns a search response body into a SearchResultPage.
//
// Features:
//   - one entry and many entries produce the same shape;
//   - Total comes from the subtitle even when the page has no entries;
//   - now is only consulted for entries without <updated>.
//
// Errors:
//   - *ParseError for anything encoding/xml rejects (malformed XML, wrong root).
func Normalize(body []byte, now func() time.Time) (*models.SearchResultPage, error) {
	if now == nil {
		now = time.Now
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var doc feed
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	page := &models.SearchResultPage{
		Total:   extractTotal(text(doc.Subtitle)),
		Results: make([]models.ResultEntry, 0, len(doc.Entries)),
	}

	for _, e := range doc.Entries {
		page.Results = append(page.Results, normalizeEntry(e, now))
	}

	return page, nil
}

func normalizeEntry(e entry, now func() time.Time) models.ResultEntry {
	updated := text(e.Updated)
	if updated == "" {
		updated = now().UTC().Format(time.RFC3339)
	}

	return models.ResultEntry{
		ID:      orDefault(text(e.ID), FallbackID),
		Title:   orDefault(text(e.Title), FallbackTitle),
		Summary: normalizeSummary(e.Summary),
		Updated: updated,
		Link:    orDefault(firstHref(e.Links), FallbackLink),
	}
}

// normalizeSummary applies the three-way rule:
//  1. plain text node -> its text;
//  2. structured node (nested markup) -> its text-content field, the direct character data;
//  3. absent or blank -> FallbackSummary.
//
// encoding/xml keeps the direct character data of both shapes in summary.Text,
// so the first two cases read the same field. The result is never empty.
func normalizeSummary(s *summary) string {
	if s == nil {
		return FallbackSummary
	}

	if txt := strings.TrimSpace(s.Text); txt != "" {
		return txt
	}

	return FallbackSummary
}

// extractTotal returns the first run of decimal digits in the subtitle, or 0.
// "Aantal gevonden ECLI's: 531" -> 531.
func extractTotal(subtitle string) int {
	m := reDigits.FindString(subtitle)
	if m == "" {
		return 0
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}

	return n
}

// firstHref skips <link> elements without an href and returns the first usable one.
func firstHref(links []link) string {
	for _, l := range links {
		if h := strings.TrimSpace(l.Href); h != "" {
			return h
		}
	}

	return ""
}

func text(n *textNode) string {
	if n == nil {
		return ""
	}

	return strings.TrimSpace(n.Text)
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}

	return value
}
