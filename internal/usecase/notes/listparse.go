package notes

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Minimum statement length in runes; shorter lines are noise.
const (
	minDecisionRunes = 5
	minItemRunes     = 3
)

var (
	// separator splits trailing metadata off a statement: " — ", " - ", "|", ";".
	separator   = regexp.MustCompile(`\s+[—–-]\s+|\s*[|;]\s*`)
	parenGroup  = regexp.MustCompile(`\(([^()]*)\)`)
	pieceSplit  = regexp.MustCompile(`\s*,\s*`)
	wrappedLine = regexp.MustCompile(`^\(.*\)$`)
)

// fields collects metadata split off a line
type fields map[Field]string

func (f fields) set(k Field, v string) {
	if v = cleanValue(v); v == "" {
		return
	}
	if _, ok := f[k]; !ok {
		f[k] = v
	}
}

func (f fields) merge(other fields) {
	for k, v := range other {
		f.set(k, v)
	}
}

func (it *ParsedItem) slot(f Field) *string {
	switch f {
	case FieldResponsible:
		return &it.Responsible
	case FieldDueDate:
		return &it.DueDate
	case FieldContext:
		return &it.Context
	case FieldImpact:
		return &it.Impact
	}
	return nil
}

// fill sets f when it is still empty
func (it *ParsedItem) fill(f Field, v string) bool {
	p := it.slot(f)
	if p == nil || resolved(*p) || v == "" {
		return false
	}
	*p = v
	return true
}

func minRunes(zone Zone) int {
	if zone == ZoneDecisions || zone == ZoneGeneral {
		return minDecisionRunes
	}
	return minItemRunes
}

// zoneParser turns the lines of one zone into items. Lines that are not
// items are either attached to the last item as metadata or kept as
// context window lines owned by the last item.
type zoneParser struct {
	lex    *lexicon
	zone   Zone
	radius int

	items   []ParsedItem
	owned   [][]Line
	orphans []Line

	// pending is the field of a label-only line waiting for its value.
	pending Field
	// held is metadata seen before the first item of the zone.
	held fields
}

// ParseZone parses the lines of one zone into candidate items in document
// order.
func (a *Analyzer) ParseZone(zone Zone, lines []Line) []ParsedItem {
	p := &zoneParser{lex: a.lex, zone: zone, radius: a.radius, held: fields{}}
	for _, ln := range lines {
		p.consume(ln)
	}
	return p.finish()
}

func (p *zoneParser) consume(ln Line) {
	text := p.lex.stripMarker(ln.Text)
	if !hasContent(text) {
		return
	}
	ln.Text = text

	if f := p.pending; f != "" {
		p.pending = ""
		p.assign(f, text)
		return
	}
	if p.lex.headerNoise.MatchString(text) {
		return
	}
	if f, value, ok := p.labelLine(text); ok {
		if value == "" {
			p.pending = f
		} else {
			p.assign(f, value)
		}
		return
	}
	if p.bareValue(text) {
		return
	}
	if p.lex.isContinuation(text) {
		if m := wrappedLine.FindString(text); m != "" && len(p.items) > 0 {
			if meta := p.lex.metadataPieces(m[1 : len(m)-1]); meta != nil {
				p.assignAll(meta)
				return
			}
		}
		p.own(ln)
		return
	}
	p.addItem(ln)
}

func (p *zoneParser) labelLine(text string) (Field, string, bool) {
	m := p.lex.labelLine.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	f := labelField(m[1:5])
	return f, strings.TrimSpace(m[5]), f != ""
}

func labelField(groups []string) Field {
	order := []Field{FieldResponsible, FieldDueDate, FieldContext, FieldImpact}
	for i, g := range groups {
		if g != "" && i < len(order) {
			return order[i]
		}
	}
	return ""
}

// bareValue attaches a line that is only a date phrase, or only a name in an
// action zone, to the previous item.
func (p *zoneParser) bareValue(text string) bool {
	if len(p.items) == 0 || p.zone == ZoneUpcoming || p.zone == ZoneQuestions {
		return false
	}
	last := &p.items[len(p.items)-1]
	if p.lex.isDatePhrase(text) {
		last.fill(FieldDueDate, cleanValue(text))
		return true
	}
	if p.zone == ZoneActions || p.zone == ZoneGeneral {
		if p.lex.nameOnly.MatchString(text) {
			if name, ok := p.lex.acceptName(text); ok {
				last.fill(FieldResponsible, name)
				return true
			}
		}
	}
	return false
}

func (p *zoneParser) assign(f Field, value string) {
	value = cleanValue(value)
	if f == FieldResponsible {
		if name, ok := p.lex.labelledName(value); ok {
			value = name
		}
	}
	if value == "" {
		return
	}
	if n := len(p.items); n > 0 {
		p.items[n-1].fill(f, value)
		return
	}
	// Header metadata of the whole document ("Date: 12/03") is not an
	// item's metadata.
	if p.zone != ZoneGeneral {
		p.held.set(f, value)
	}
}

func (p *zoneParser) assignAll(meta fields) {
	for _, f := range []Field{FieldResponsible, FieldDueDate, FieldContext, FieldImpact} {
		if v, ok := meta[f]; ok {
			p.assign(f, v)
		}
	}
}

// own records a non-item line for the last item, or for the first item to
// come when there is none yet.
func (p *zoneParser) own(ln Line) {
	if n := len(p.items); n > 0 {
		p.owned[n-1] = append(p.owned[n-1], ln)
		return
	}
	p.orphans = append(p.orphans, ln)
}

func (p *zoneParser) addItem(ln Line) {
	zone := p.zone
	body := ln.Text
	if hint, rest, ok := p.lex.statementPrefix(body); ok {
		zone, body = hint, rest
	}
	if zone != ZoneQuestions && p.lex.isQuestion(body) {
		zone = ZoneQuestions
	}

	item := ParsedItem{Raw: body, Zone: zone, Line: ln.Index}
	meta := fields{}
	switch zone {
	case ZoneQuestions, ZoneUpcoming:
		item.Text = strings.TrimSpace(body)
	default:
		var text string
		text, meta = p.lex.splitInline(body, zone)
		item.Text = cleanStatement(text)
	}

	if utf8.RuneCountInString(item.Text) < minRunes(zone) || !hasContent(item.Text) {
		if len(meta) > 0 && len(p.items) > 0 {
			p.assignAll(meta)
			return
		}
		p.own(ln)
		return
	}

	for f, v := range meta {
		item.fill(f, v)
	}
	for f, v := range p.held {
		item.fill(f, v)
	}
	p.held = fields{}
	p.items = append(p.items, item)
	p.owned = append(p.owned, nil)
}

// finish builds each item's context window from the lines it owns that lie
// within the radius.
func (p *zoneParser) finish() []ParsedItem {
	if len(p.items) == 0 {
		return nil
	}
	p.owned[0] = append(p.orphans, p.owned[0]...)
	for i := range p.items {
		it := &p.items[i]
		for _, ln := range p.owned[i] {
			if d := ln.Index - it.Line; d <= p.radius && d >= -p.radius {
				it.Window = append(it.Window, ln.Text)
			}
		}
	}
	return p.items
}

// statementPrefix strips a label such as "Décision :" or "TODO:" and
// reports the zone it names.
func (l *lexicon) statementPrefix(s string) (Zone, string, bool) {
	m := l.prefix.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s, false
	}
	rest := strings.TrimSpace(s[m[1]:])
	if rest == "" {
		return "", s, false
	}
	zones := []Zone{ZoneDecisions, ZoneActions, ZoneUpcoming, ZoneQuestions}
	for i, z := range zones {
		if m[2+2*i] >= 0 {
			return z, rest, true
		}
	}
	return "", s, false
}

func (l *lexicon) isQuestion(s string) bool {
	return strings.HasSuffix(strings.TrimSpace(s), "?") || l.questionLead.MatchString(s)
}

func (l *lexicon) isContinuation(s string) bool {
	return wrappedLine.MatchString(s) || l.contextLead.MatchString(s) || l.impactLead.MatchString(s)
}

// isDatePhrase reports a line made of a date phrase and at most one more word
func (l *lexicon) isDatePhrase(s string) bool {
	s = strings.TrimRight(s, ".!, ")
	loc := l.dateLead.FindStringIndex(s)
	if loc == nil {
		return false
	}
	return len(strings.Fields(s[loc[1]:])) <= 1
}

// splitInline separates a statement from the metadata written around it:
// a leading "Name:" in action zones, parenthesised groups, labelled
// segments, trailing separator segments and a trailing ": value". Only
// parts made entirely of metadata are removed.
func (l *lexicon) splitInline(s string, zone Zone) (string, fields) {
	meta := fields{}

	if zone == ZoneActions {
		if m := l.nameLead.FindStringSubmatch(s); m != nil && !l.labelLine.MatchString(s) {
			if name, ok := l.acceptName(m[1]); ok {
				meta.set(FieldResponsible, name)
				s = m[2]
			}
		}
	}

	s = parenGroup.ReplaceAllStringFunc(s, func(g string) string {
		if p := l.metadataPieces(g[1 : len(g)-1]); p != nil {
			meta.merge(p)
			return " "
		}
		return g
	})

	if locs := l.labelInline.FindAllStringSubmatchIndex(s, -1); len(locs) > 0 && locs[0][0] > 0 {
		tail := s[locs[0][0]:]
		s = s[:locs[0][0]]
		meta.merge(l.labelledSegments(tail))
	}

	for {
		seps := separator.FindAllStringIndex(s, -1)
		if len(seps) == 0 {
			break
		}
		last := seps[len(seps)-1]
		if last[0] == 0 {
			break
		}
		p := l.metadataPieces(s[last[1]:])
		if p == nil {
			break
		}
		meta.merge(p)
		s = s[:last[0]]
	}

	if i := strings.LastIndex(s, ":"); i > 0 {
		if p := l.metadataPieces(s[i+1:]); p != nil {
			meta.merge(p)
			s = s[:i]
		}
	}
	return strings.Join(strings.Fields(s), " "), meta
}

// labelledSegments parses "label: value label: value ..." where each value
// runs to the next label; extra separated pieces are classified on their own.
func (l *lexicon) labelledSegments(tail string) fields {
	meta := fields{}
	locs := l.labelInline.FindAllStringSubmatchIndex(tail, -1)
	for i, m := range locs {
		end := len(tail)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		groups := make([]string, 4)
		for g := 0; g < 4; g++ {
			if m[2+2*g] >= 0 {
				groups[g] = tail[m[2+2*g]:m[3+2*g]]
			}
		}
		f := labelField(groups)
		value := tail[m[1]:end]
		parts := separator.Split(value, -1)
		if f == FieldResponsible {
			if name, ok := l.labelledName(parts[0]); ok {
				meta.set(f, name)
			}
		} else if f != "" {
			meta.set(f, parts[0])
		}
		for _, extra := range parts[1:] {
			if p := l.metadataPieces(extra); p != nil {
				meta.merge(p)
			}
		}
	}
	return meta
}

// metadataPieces classifies a comma-separated group. It returns nil unless
// every piece is metadata: "label: value", a date phrase, a person name or
// a context/impact clause.
func (l *lexicon) metadataPieces(group string) fields {
	group = strings.TrimSpace(group)
	if group == "" {
		return nil
	}
	meta := fields{}
	for _, piece := range pieceSplit.Split(group, -1) {
		piece = strings.TrimSpace(strings.TrimRight(piece, "."))
		if piece == "" {
			continue
		}
		f, v, ok := l.classifyPiece(piece)
		if !ok {
			return nil
		}
		meta.set(f, v)
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

func (l *lexicon) classifyPiece(piece string) (Field, string, bool) {
	if m := l.labelLine.FindStringSubmatch(piece); m != nil {
		if f := labelField(m[1:5]); f != "" && strings.TrimSpace(m[5]) != "" {
			v := m[5]
			if f == FieldResponsible {
				v, _ = l.labelledName(v)
			}
			return f, v, v != ""
		}
	}
	if l.isDatePhrase(piece) {
		return FieldDueDate, piece, true
	}
	if l.impactLead.MatchString(piece) {
		if v, _, ok := l.impact.Match(piece); ok {
			return FieldImpact, v, true
		}
	}
	if l.contextLead.MatchString(piece) {
		if v, _, ok := l.context.Match(piece); ok {
			return FieldContext, v, true
		}
	}
	if l.nameOnly.MatchString(piece) {
		if name, ok := l.acceptName(piece); ok {
			return FieldResponsible, name, true
		}
	}
	return "", "", false
}

// cleanStatement trims separators and closing punctuation left over once
// metadata has been removed.
func cleanStatement(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ",;:—–-| ")
	s = strings.TrimRight(s, ".,;:—–-| ")
	return strings.Join(strings.Fields(s), " ")
}

func hasContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
