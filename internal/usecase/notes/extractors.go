package notes

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// Field names one metadata slot of a ParsedItem
type Field string

const (
	FieldResponsible Field = "responsible"
	FieldDueDate     Field = "dueDate"
	FieldContext     Field = "context"
	FieldImpact      Field = "impact"
)

// maxValueRunes bounds every extracted metadata value.
const maxValueRunes = 160

// Rule is one declarative pattern -> value mapping. Group selects the
// submatch that holds the value.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Group   int
	// Accept validates and rewrites a candidate value; nil keeps it as is.
	Accept func(string) (string, bool)
}

// Extractor recovers one metadata field. Rules are evaluated in order and
// the first accepted match wins.
type Extractor struct {
	Field Field
	Rules []Rule
}

// Match runs the rules against a single text and reports which rule fired.
func (e Extractor) Match(text string) (value, rule string, ok bool) {
	for _, r := range e.Rules {
		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			if r.Group >= len(m) {
				continue
			}
			v := cleanValue(m[r.Group])
			if v == "" {
				continue
			}
			if r.Accept != nil {
				var accepted bool
				if v, accepted = r.Accept(v); !accepted {
					continue
				}
				v = cleanValue(v)
			}
			if v != "" {
				return v, r.Name, true
			}
		}
	}
	return "", "", false
}

// Extract scans the context window lines in order, then the statement, and
// returns the first value found or entities.Unspecified.
func (e Extractor) Extract(statement string, window ContextWindow) string {
	for _, line := range window {
		if v, _, ok := e.Match(line); ok {
			return v
		}
	}
	if v, _, ok := e.Match(statement); ok {
		return v
	}
	return entities.Unspecified
}

// Resolve keeps an inline value and falls back to Extract otherwise.
func (e Extractor) Resolve(inline, statement string, window ContextWindow) string {
	if resolved(inline) {
		return inline
	}
	return e.Extract(statement, window)
}

func newResponsibleExtractor(v Vocabulary, verbs string, strict, labelled func(string) (string, bool)) Extractor {
	return Extractor{
		Field: FieldResponsible,
		Rules: []Rule{
			{
				Name:    "responsible-label",
				Pattern: regexp.MustCompile(fieldStart + alternation(v.Labels.Responsible) + `\s*[:：]\s*([^,;|()\[\]]+)`),
				Group:   1,
				Accept:  labelled,
			},
			{
				Name:    "mention",
				Pattern: regexp.MustCompile(`(?:^|[^\p{L}\p{N}])@(\p{L}[\p{L}\p{N}._-]*)`),
				Group:   1,
				Accept: func(s string) (string, bool) {
					return strict(strings.NewReplacer(".", " ", "_", " ").Replace(s))
				},
			},
			{
				Name:    "subject-verb",
				Pattern: regexp.MustCompile(wordStart + `(` + namePattern + `)\s+` + verbs + wordEnd),
				Group:   1,
				Accept:  strict,
			},
			{
				Name:    "assignment",
				Pattern: regexp.MustCompile(wordStart + alternation(v.AssignmentMarkers) + `\s+(` + namePattern + `)`),
				Group:   1,
				Accept:  strict,
			},
		},
	}
}

func newDueDateExtractor(v Vocabulary, date string) Extractor {
	return Extractor{
		Field: FieldDueDate,
		Rules: []Rule{
			{
				Name:    "due-label",
				Pattern: regexp.MustCompile(fieldStart + alternation(v.Labels.DueDate) + `\s*[:：]\s*([^,;|()\[\]]+)`),
				Group:   1,
			},
			{
				Name:    "preposition-date",
				Pattern: regexp.MustCompile(wordStart + `(` + prepositionPattern(v) + `\s+(?:` + date + `|` + quarterPattern + `))` + wordEnd),
				Group:   1,
			},
			{
				Name:    "explicit-date",
				Pattern: regexp.MustCompile(wordStart + `(` + date + `)` + wordEnd),
				Group:   1,
			},
		},
	}
}

// newClauseExtractor builds the context and impact extractors: an explicit
// label, then the clause introduced by a connective. The clause stops at
// the end of the sentence or where a connective of the other field begins.
func newClauseExtractor(field Field, labels, connectives, others []string) Extractor {
	stop := regexp.MustCompile(`[!?;]|\.(?:\s|$)|` + wordStart + connectivePattern(others))
	cut := func(s string) (string, bool) {
		if loc := stop.FindStringIndex(s); loc != nil {
			s = s[:loc[0]]
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return Extractor{
		Field: field,
		Rules: []Rule{
			{
				Name:    string(field) + "-label",
				Pattern: regexp.MustCompile(fieldStart + alternation(labels) + `\s*[:：]\s*([^;|\[\]]+)`),
				Group:   1,
			},
			{
				Name:    string(field) + "-connective",
				Pattern: regexp.MustCompile(wordStart + connectivePattern(connectives) + `(.+)$`),
				Group:   1,
				Accept:  cut,
			},
		},
	}
}

// cleanValue trims separators and dangling punctuation, then bounds the
// value at a word boundary.
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ",;:—–-| ")
	s = strings.TrimRight(s, ".,;:!?—–-| ")
	s = strings.Trim(s, `"«»“” `)
	for strings.HasSuffix(s, ")") && strings.Count(s, "(") < strings.Count(s, ")") {
		s = strings.TrimSpace(strings.TrimSuffix(s, ")"))
	}
	for strings.HasPrefix(s, "(") && strings.Count(s, "(") > strings.Count(s, ")") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "("))
	}
	return truncateAtWordBoundary(s, maxValueRunes)
}

func truncateAtWordBoundary(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	head := string(r[:maxRunes])
	cut := strings.LastIndex(head, " ")
	if cut <= 0 {
		return head
	}
	return strings.TrimRight(head[:cut], ",;:—–- ")
}

// labelledName accepts an explicitly labelled owner. Names are title-cased;
// anything else ("l'équipe design") is kept as written.
func (l *lexicon) labelledName(s string) (string, bool) {
	if loc := separator.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = cleanValue(s)
	if s == "" {
		return "", false
	}
	if name, ok := l.acceptName(s); ok {
		return name, true
	}
	return s, true
}

// Enrich fills every unresolved field of every item from its context window
// and statement. Afterwards each field holds a value or entities.Unspecified.
func (a *Analyzer) Enrich(items []ParsedItem) []ParsedItem {
	for i := range items {
		it := &items[i]
		it.Responsible = a.lex.responsible.Resolve(it.Responsible, it.Text, it.Window)
		it.DueDate = a.lex.dueDate.Resolve(it.DueDate, it.Text, it.Window)
		it.Context = a.lex.context.Resolve(it.Context, it.Text, it.Window)
		it.Impact = a.lex.impact.Resolve(it.Impact, it.Text, it.Window)
	}
	return items
}
