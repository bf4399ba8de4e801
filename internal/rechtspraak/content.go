package rechtspraak

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// Placeholders used when a document carries neither <uitspraak> nor <conclusie>.
const (
	ContentPlaceholder         = "<p>De volledige inhoud kon niet worden geladen.</p>"
	ContentPlaceholderMarkdown = "De volledige inhoud kon niet worden geladen."
)

// bodyElements - local names of the document body, first match in document order wins.
var bodyElements = map[string]bool{
	"uitspraak": true,
	"conclusie": true,
}

// bodyNode captures the inner markup of the body element.
type bodyNode struct {
	Inner string `xml:",innerxml"`
}

// ExtractBody returns the inner markup of the first uitspraak or conclusie element.
// ok=false means no such element (or unreadable XML); the fragment is then ContentPlaceholder.
func ExtractBody(raw []byte) (string, bool) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err != nil {
			// io.EOF: the document has no body element.
			return ContentPlaceholder, false
		}

		se, isStart := tok.(xml.StartElement)
		if !isStart || !bodyElements[se.Name.Local] {
			continue
		}

		var node bodyNode
		if err := dec.DecodeElement(&node, &se); err != nil {
			return ContentPlaceholder, false
		}

		inner := strings.TrimSpace(node.Inner)
		if inner == "" {
			return ContentPlaceholder, false
		}

		return inner, true
	}
}

// docbookToHTML maps the Rechtspraak document vocabulary to HTML elements.
var docbookToHTML = map[string]string{
	"section":        "section",
	"parablock":      "div",
	"paragroup":      "div",
	"para":           "p",
	"rs-title":       "h3",
	"bridgehead":     "h4",
	"emphasis":       "em",
	"orderedlist":    "ol",
	"itemizedlist":   "ul",
	"listitem":       "li",
	"linebreak":      "br",
	"informaltable":  "div",
	"footnote":       "aside",
	"nr":             "strong",
	"uitspraak.info": "header",
	"conclusie.info": "header",
}

var (
	reSelfClosing = regexp.MustCompile(`<([A-Za-z][\w.:-]*)((?:\s[^<>]*?)?)\s*/>`)
	// <title> is raw text for the HTML parser, nested markup would be lost.
	reTitle = regexp.MustCompile(`<(/?)title([\s>])`)
)

// ToMarkdown renders an extracted body fragment as Markdown.
func ToMarkdown(fragment string) (string, error) {
	const op = "rechtspraak.ToMarkdown"

	if strings.TrimSpace(fragment) == "" || fragment == ContentPlaceholder {
		return ContentPlaceholderMarkdown, nil
	}

	// The HTML parser treats <x/> as an open tag, expand it first.
	expanded := reSelfClosing.ReplaceAllString(fragment, "<$1$2></$1>")
	expanded = reTitle.ReplaceAllString(expanded, "<${1}rs-title$2")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(expanded))
	if err != nil {
		return "", fmt.Errorf("%s: parse: %w", op, err)
	}

	body := doc.Find("body")
	body.Find("*").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)

		name, ok := docbookToHTML[n.Data]
		if !ok {
			return
		}

		if n.Data == "emphasis" && strings.EqualFold(s.AttrOr("role", ""), "bold") {
			name = "strong"
		}

		n.Data = name
		n.DataAtom = atom.Lookup([]byte(name))
		s.RemoveAttr("role")
	})

	html, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("%s: render: %w", op, err)
	}

	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%s: convert: %w", op, err)
	}

	md = strings.TrimSpace(md)
	if md == "" {
		return ContentPlaceholderMarkdown, nil
	}

	return md, nil
}
