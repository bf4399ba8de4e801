// filters loads the static value lists used to populate the search filters:
// instances (courts), law areas (a tree) and procedure types.
package filters

// Instantie - a court or other issuing body; Identifier is the creator value.
type Instantie struct {
	Identifier string `xml:"Identifier" json:"identifier"`
	Naam       string `xml:"Naam"       json:"name"`
	Afkorting  string `xml:"Afkorting"  json:"abbreviation,omitempty"`
	Type       string `xml:"Type"       json:"type,omitempty"`
	BeginDate  string `xml:"BeginDate"  json:"beginDate,omitempty"`
	EndDate    string `xml:"EndDate"    json:"endDate,omitempty"`
}

// Rechtsgebied - a law area; Identifier is the subject value.
// Grouping nodes may have no Identifier and only children.
type Rechtsgebied struct {
	Identifier string         `xml:"Identifier"   json:"identifier,omitempty"`
	Naam       string         `xml:"Naam"         json:"name,omitempty"`
	Children   []Rechtsgebied `xml:"Rechtsgebied" json:"children,omitempty"`
}

// Proceduresoort - a procedure type; Identifier is the procedure value.
type Proceduresoort struct {
	Identifier string `xml:"Identifier" json:"identifier"`
	Naam       string `xml:"Naam"       json:"name"`
}

// FlatRechtsgebied - a law area with its depth in the tree, for select boxes.
type FlatRechtsgebied struct {
	Identifier string `json:"identifier"`
	Naam       string `json:"name"`
	Depth      int    `json:"depth"`
}

// Lists - the three value lists, always complete.
type Lists struct {
	Instanties       []Instantie      `json:"instances"`
	Rechtsgebieden   []Rechtsgebied   `json:"lawAreas"`
	Proceduresoorten []Proceduresoort `json:"procedures"`
}

// Flatten walks the law-area tree depth-first.
// Grouping nodes without an Identifier are skipped, their children keep the parent depth.
func (l *Lists) Flatten() []FlatRechtsgebied {
	out := []FlatRechtsgebied{}

	var walk func(nodes []Rechtsgebied, depth int)
	walk = func(nodes []Rechtsgebied, depth int) {
		for _, n := range nodes {
			if n.Identifier == "" {
				walk(n.Children, depth)
				continue
			}

			out = append(out, FlatRechtsgebied{Identifier: n.Identifier, Naam: n.Naam, Depth: depth})
			walk(n.Children, depth+1)
		}
	}
	walk(l.Rechtsgebieden, 0)

	return out
}

// xml roots; the root element name itself is not checked.
type instantieList struct {
	Items []Instantie `xml:"Instantie"`
}

type rechtsgebiedList struct {
	Items []Rechtsgebied `xml:"Rechtsgebied"`
}

type proceduresoortList struct {
	Items []Proceduresoort `xml:"Proceduresoort"`
}
