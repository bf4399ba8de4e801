package models

// ContentFormat - representation of the full document on the HTTP surface.
type ContentFormat string

const (
	// FormatXML - upstream XML, untouched.
	FormatXML ContentFormat = "xml"
	// FormatHTML - inner markup of the uitspraak/conclusie element.
	FormatHTML ContentFormat = "html"
	// FormatMarkdown - the same fragment rendered as Markdown.
	FormatMarkdown ContentFormat = "markdown"
)

// Content - full text of a judgment or opinion.
type Content struct {
	ECLI        string
	Format      ContentFormat
	ContentType string
	Body        []byte
}
