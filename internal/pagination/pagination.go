// pagination holds the offset/page-size/total state of a result list
// and derives what the pager shows.
//
// A State belongs to one caller and is not safe for concurrent use.
package pagination

import "fmt"

// DefaultMax - page size when none is given.
const DefaultMax = 50

// State - zero-based offset, page size and the last known total.
type State struct {
	Offset int `json:"offset"`
	Max    int `json:"max"`
	Total  int `json:"total"`
}

// View - what the pager renders for a State.
type View struct {
	Summary      string `json:"summary"`
	Visible      bool   `json:"visible"`
	Label        string `json:"label,omitempty"`
	PrevDisabled bool   `json:"prevDisabled"`
	NextDisabled bool   `json:"nextDisabled"`
}

// New returns a State at offset 0.
func New(size int) *State {
	if size <= 0 {
		size = DefaultMax
	}

	return &State{Max: size}
}

// AtPage returns a State positioned on a 1-based page.
func AtPage(page, size int) *State {
	s := New(size)
	if page > 1 {
		s.Offset = (page - 1) * s.Max
	}

	return s
}

// Reset starts a new search.
func (s *State) Reset() {
	s.Offset = 0
	s.Total = 0
}

// SetTotal records the total reported by the last response.
func (s *State) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	s.Total = n
}

// Page is the 1-based page of the current offset.
func (s *State) Page() int {
	return s.Offset/s.Max + 1
}

// Next moves one page forward. It reports false on the last page.
func (s *State) Next() bool {
	if s.Offset+s.Max >= s.Total {
		return false
	}

	s.Offset += s.Max
	return true
}

// Prev moves one page back, clamped at 0. It reports false on the first page.
func (s *State) Prev() bool {
	if s.Offset == 0 {
		return false
	}

	s.Offset -= s.Max
	if s.Offset < 0 {
		s.Offset = 0
	}
	return true
}

// View derives the pager. The range label is only set when there is more
// than one page.
func (s *State) View() View {
	v := View{
		Summary: fmt.Sprintf("Totaal: %d", s.Total),
		Visible: s.Total > s.Max,
	}

	if !v.Visible {
		v.PrevDisabled = true
		v.NextDisabled = true
		return v
	}

	start := s.Offset + 1
	end := min(s.Offset+s.Max, s.Total)

	v.Label = fmt.Sprintf("%d - %d van %d", start, end, s.Total)
	v.PrevDisabled = s.Offset == 0
	v.NextDisabled = end >= s.Total

	return v
}
