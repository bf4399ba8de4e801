// rechtspraak is the client of the Rechtspraak.nl open-data API:
// query building, Atom normalization and the full-content passthrough.
package rechtspraak

import "encoding/xml"

// Tags carry no namespace on purpose: encoding/xml then matches on the local
// name, so <feed xmlns="http://www.w3.org/2005/Atom"> and a bare <feed> decode alike.

// feed - root of the search response.
type feed struct {
	XMLName  xml.Name  `xml:"feed"`
	Subtitle *textNode `xml:"subtitle"`
	// Entries is a slice even when upstream returns a single match.
	Entries []entry `xml:"entry"`
}

// entry - one search hit.
type entry struct {
	ID      *textNode `xml:"id"`
	Title   *textNode `xml:"title"`
	Updated *textNode `xml:"updated"`
	Links   []link    `xml:"link"`
	Summary *summary  `xml:"summary"`
}

// textNode - element whose direct character data is the value.
type textNode struct {
	Text string `xml:",chardata"`
}

// link - <link rel="alternate" type="text/html" href="..."/>.
type link struct {
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
	Href string `xml:"href,attr"`
}

// summary - either a plain text node or a container with nested markup.
// Nested elements are skipped by the decoder, Text keeps the direct character data.
type summary struct {
	Text string `xml:",chardata"`
}
