package notes

import "strings"

// splitLines returns the non-empty lines of normalized text. Index is the
// line number in the document, blank lines included, so distances between
// lines reflect the layout the author wrote.
func splitLines(normalized string) []Line {
	if normalized == "" {
		return nil
	}
	raw := strings.Split(normalized, "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		if text = strings.TrimSpace(text); text != "" {
			lines = append(lines, Line{Index: i, Text: text})
		}
	}
	return lines
}

// Segment assigns every line of normalized text to a zone. A heading is a
// whole line matching a heading phrase once numbering, bullets, markdown
// markers and a trailing colon are removed; a phrase inside a longer
// sentence never opens a zone. Lines before the first heading and lines
// under an ignored heading go to ZoneGeneral. A markdown heading that names
// no zone loses its markers and stays in the current zone as an ordinary
// line. Segment never panics: a fault puts every line in ZoneGeneral.
func (a *Analyzer) Segment(normalized string) (seg Segments) {
	lines := splitLines(normalized)
	defer func() {
		if r := recover(); r != nil {
			seg = Segments{Zones: Zones{ZoneGeneral: lines}}
		}
	}()

	seg = Segments{Zones: make(Zones, len(zoneOrder))}
	current := ZoneGeneral
	for _, ln := range lines {
		if zone, ok := a.lex.heading(ln.Text); ok {
			if zone != ZoneGeneral {
				seg.HeadingsFound = true
			}
			current = zone
			continue
		}
		if isMarkdownHeading(ln.Text) {
			if ln.Text = strings.TrimSpace(strings.TrimLeft(ln.Text, "#")); ln.Text == "" {
				continue
			}
		}
		seg.Zones[current] = append(seg.Zones[current], ln)
	}
	return seg
}

func isMarkdownHeading(line string) bool {
	rest := strings.TrimLeft(line, "#")
	return len(rest) < len(line) && (rest == "" || rest[0] == ' ')
}
