// Package markup converts inline emphasis markup found in activity descriptions
// into plain text plus emphasis ranges, so that no markup reaches the client.
package markup

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Span is an emphasised rune range [Start, End) of Document.Text.
type Span struct {
	Start int
	End   int
}

// Document is markup-free text with its emphasis ranges in ascending order.
type Document struct {
	Text  string
	Spans []Span
}

// Parse tokenises raw and keeps only text content. <strong>, <b> and <em> open
// emphasis; every other tag is dropped. Unclosed emphasis runs to the end of input.
func Parse(raw string) Document {
	doc := Document{Spans: []Span{}}
	if raw == "" {
		return doc
	}

	var (
		builder  strings.Builder
		offset   int
		emphasis int
		skip     int
	)
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			doc.Text = builder.String()
			return doc
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if text == "" {
				continue
			}
			n := utf8.RuneCountInString(text)
			if emphasis > 0 {
				doc.Spans = extend(doc.Spans, offset, offset+n)
			}
			builder.WriteString(text)
			offset += n
		case html.StartTagToken:
			switch tagAtom(z) {
			case atom.Strong, atom.B, atom.Em:
				emphasis++
			case atom.Script, atom.Style:
				skip++
			}
		case html.EndTagToken:
			switch tagAtom(z) {
			case atom.Strong, atom.B, atom.Em:
				if emphasis > 0 {
					emphasis--
				}
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
			}
		}
	}
}

// PlainText returns raw with all markup removed.
func PlainText(raw string) string {
	return Parse(raw).Text
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

// extend merges a range touching the previous span instead of appending a new one.
func extend(spans []Span, start, end int) []Span {
	if n := len(spans); n > 0 && spans[n-1].End == start {
		spans[n-1].End = end
		return spans
	}
	return append(spans, Span{Start: start, End: end})
}
