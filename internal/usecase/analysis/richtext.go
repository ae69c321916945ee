package analysis

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// blockElements end the current line when they open or close
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Blockquote: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Table: true, atom.Tr: true, atom.Pre: true,
}

// skippedElements drop their whole content
var skippedElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Head: true, atom.Noscript: true, atom.Template: true,
}

// PlainText converts editor output to the plain text the pipeline reads.
// Markdown is already plain enough; HTML is flattened.
func PlainText(raw string, format entities.NotesFormat) string {
	if format == entities.NotesFormatHTML {
		return htmlToText(raw)
	}
	return raw
}

// htmlToText flattens rich-text editor output into plain notes: one line per
// block element, "- " before list items, entities decoded. Malformed markup
// never fails; the tokenizer recovers and keeps whatever text it finds.
func htmlToText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var b strings.Builder
	atLineStart := true
	bullet := false
	skip, pre := 0, 0

	newline := func() {
		if !atLineStart {
			b.WriteByte('\n')
			atLineStart = true
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; both end the document
			return b.String()

		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if pre == 0 {
				text = strings.Map(flattenSpace, text)
				if atLineStart {
					text = strings.TrimLeft(text, " ")
				}
			}
			if text == "" {
				continue
			}
			if bullet {
				b.WriteString("- ")
				bullet = false
			}
			b.WriteString(text)
			atLineStart = strings.HasSuffix(text, "\n")

		case html.StartTagToken, html.SelfClosingTagToken:
			tag := tagAtom(z)
			switch {
			case skippedElements[tag]:
				if tt == html.StartTagToken {
					skip++
				}
			case skip > 0:
			case tag == atom.Br:
				b.WriteByte('\n')
				atLineStart = true
			case tag == atom.Li:
				newline()
				bullet = true
			case tag == atom.Pre:
				newline()
				pre++
			case blockElements[tag]:
				newline()
			case tag == atom.Td || tag == atom.Th:
				if !atLineStart {
					b.WriteByte(' ')
				}
			}

		case html.EndTagToken:
			tag := tagAtom(z)
			switch {
			case skippedElements[tag]:
				if skip > 0 {
					skip--
				}
			case skip > 0:
			case tag == atom.Pre:
				if pre > 0 {
					pre--
				}
				newline()
			case blockElements[tag]:
				newline()
			}
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

func flattenSpace(r rune) rune {
	switch r {
	case '\n', '\r', '\t', '\f':
		return ' '
	}
	return r
}
