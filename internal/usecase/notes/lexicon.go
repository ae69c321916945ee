package notes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// neverMatch is an empty character class, used when a vocabulary list is empty.
const neverMatch = `[^\x00-\x{10FFFF}]`

// Letter-aware boundaries; \b is ASCII-only in RE2.
const (
	wordStart = `(?:^|[^\p{L}\p{N}'’])`
	wordEnd   = `(?:$|[^\p{L}\p{N}])`
	// fieldStart precedes an inline "label:" and requires a separator so that
	// "fixer la date: lundi" keeps its statement intact.
	fieldStart = `(?:^|[(\[,;|—–.]\s*|\s-\s+)`
)

const nameToken = `\p{Lu}[\p{L}'’-]*`

var namePattern = nameToken + `(?:\s+(?i:et|and|&)\s+` + nameToken + `|\s+` + nameToken + `){0,2}`

// foldClasses maps an unaccented letter to every accented form it stands for.
var foldClasses = map[rune]string{
	'a': "aàâäáãå",
	'e': "eéèêë",
	'i': "iîïíì",
	'o': "oôöóòõ",
	'u': "uùûüú",
	'c': "cç",
	'y': "yÿý",
	'n': "nñ",
}

var (
	ordinalPrefix = regexp.MustCompile(`^\(?(?:\d{1,3}|[ivxIVX]{1,5}|[a-z])[.)]\s+`)
	checkbox      = regexp.MustCompile(`^\[[ xX✓✔]?\]\s*`)
	emphasis      = strings.NewReplacer("**", "", "__", "")
)

// foldText case-folds s, removes diacritics and collapses whitespace. It is
// the comparison key for every vocabulary lookup.
func foldText(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// foldKey is the dedup key: case-folded with whitespace collapsed, accents kept.
func foldKey(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// titleName title-cases every token of a person name, keeping connectors
// lower-case and short acronyms as written.
func titleName(s string) string {
	caser := cases.Title(language.French)
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		switch f := foldText(tok); {
		case f == "et" || f == "and" || f == "&":
			tokens[i] = f
		case isAcronym(tok):
		default:
			tokens[i] = caser.String(tok)
		}
	}
	return strings.Join(tokens, " ")
}

func isAcronym(tok string) bool {
	n := utf8.RuneCountInString(tok)
	return n >= 2 && n <= 4 && strings.ToUpper(tok) == tok && strings.ToLower(tok) != tok
}

// phrasePattern turns a vocabulary phrase into an accent-insensitive regexp
// fragment. Case-insensitivity comes from the enclosing (?i:) group.
func phrasePattern(word string) string {
	var b strings.Builder
	for _, r := range foldText(word) {
		switch {
		case r == '\'':
			b.WriteString(`['’]`)
		case r == ' ':
			b.WriteString(`\s+`)
		default:
			if cls, ok := foldClasses[r]; ok {
				b.WriteString("[" + cls + "]")
			} else {
				b.WriteString(regexp.QuoteMeta(string(r)))
			}
		}
	}
	return b.String()
}

// alternation compiles words into one case-insensitive group, longest
// phrase first so that "décisions prises" wins over "décisions".
func alternation(words []string) string {
	keys := foldedList(words)
	if len(keys) == 0 {
		return neverMatch
	}
	sort.SliceStable(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = phrasePattern(k)
	}
	return "(?i:" + strings.Join(parts, "|") + ")"
}

// connectivePattern matches a connective and the whitespace after it. Elided
// forms ("parce qu'") may be glued to the next word.
func connectivePattern(words []string) string {
	var open, elided []string
	for _, w := range words {
		if strings.HasSuffix(foldText(w), "'") {
			elided = append(elided, w)
		} else {
			open = append(open, w)
		}
	}
	var alts []string
	if len(open) > 0 {
		alts = append(alts, alternation(open)+`\s+`)
	}
	if len(elided) > 0 {
		alts = append(alts, alternation(elided)+`\s*`)
	}
	if len(alts) == 0 {
		return neverMatch
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

func foldedList(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		k := foldText(w)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func foldSet(words ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range words {
		for _, k := range foldedList(list) {
			set[k] = struct{}{}
		}
	}
	return set
}

// fieldGroups builds "(RESP)|(DUE)|(CTX)|(IMP)" so the first non-empty
// submatch tells which field a label belongs to.
func fieldGroups(l LabelVocabulary) string {
	return "(?:(" + alternation(l.Responsible) + ")|(" + alternation(l.DueDate) + ")|(" +
		alternation(l.Context) + ")|(" + alternation(l.Impact) + "))"
}

// datePattern is the explicit date phrase grammar. Quarters are left out:
// alone they name a period, not a deadline.
func datePattern(v Vocabulary) string {
	weekday := alternation(v.Weekdays)
	month := alternation(v.Months)
	period := alternation([]string{
		"semaine", "mois", "année", "trimestre", "semestre", "sprint", "week", "month", "year", "quarter",
	})
	edge := alternation([]string{"fin", "début", "mi", "end of", "early", "mid"})
	within := alternation([]string{"dans", "sous", "d'ici", "in", "within"})
	unit := alternation([]string{"jours", "jour", "semaines", "semaine", "mois", "days", "day", "weeks", "week", "months", "month"})
	next := alternation([]string{"prochain", "prochaine", "next"})

	parts := []string{
		alternation(v.RelativeDates),
		`\d{4}-\d{2}-\d{2}`,
		`\d{1,2}/\d{1,2}(?:/\d{2,4})?`,
		`\d{1,2}\.\d{1,2}\.\d{2,4}`,
		alternation([]string{"next", "this", "ce", "cette"}) + `\s+` + weekday,
		weekday + `(?:\s+\d{1,2}(?:er)?(?:\s+` + month + `)?(?:\s+\d{4})?)?(?:\s+` + next + `)?`,
		`\d{1,2}(?:er|st|nd|rd|th)?\s+` + month + `(?:\s+\d{4})?`,
		month + `(?:\s+\d{1,2}(?:st|nd|rd|th)?)?(?:,?\s+\d{4})?`,
		edge + `(?:\s+|-)(?:` + month + `|` + period + `|` + quarterPattern + `)(?:\s+\d{4})?`,
		within + `\s+\d+\s+` + unit,
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

const quarterPattern = `(?i:[qt][1-4]|[sh][12])(?:\s+\d{4})?`

// prepositionPattern matches a date preposition with an optional article
// ("avant le", "d'ici la").
func prepositionPattern(v Vocabulary) string {
	return alternation(v.DatePrepositions) + `(?:\s+(?i:le|la|les|du|au|the))?`
}

// lexicon is a Vocabulary compiled into lookup sets and regular expressions.
// It is immutable once built and safe for concurrent use.
type lexicon struct {
	headings    map[string]Zone
	actionVerbs map[string]struct{}
	stopWords   map[string]struct{}

	bullet       *regexp.Regexp
	headerNoise  *regexp.Regexp
	labelLine    *regexp.Regexp
	labelInline  *regexp.Regexp
	prefix       *regexp.Regexp
	questionLead *regexp.Regexp
	upcoming     *regexp.Regexp
	contextLead  *regexp.Regexp
	impactLead   *regexp.Regexp
	dateLead     *regexp.Regexp
	nameOnly     *regexp.Regexp
	nameLead     *regexp.Regexp
	modalAction  *regexp.Regexp

	responsible Extractor
	dueDate     Extractor
	context     Extractor
	impact      Extractor
}

func compileLexicon(v Vocabulary) (lex *lexicon, err error) {
	defer func() {
		if r := recover(); r != nil {
			lex, err = nil, fmt.Errorf("invalid vocabulary: %v", r)
		}
	}()

	lex = &lexicon{
		headings:    make(map[string]Zone),
		actionVerbs: foldSet(v.ActionVerbs),
		stopWords:   foldSet(v.NameStopWords, v.Weekdays, v.Months),
	}
	// First listing wins; zone headings take precedence over ignored ones.
	for _, h := range []struct {
		zone    Zone
		phrases []string
	}{
		{ZoneDecisions, v.Headings.Decisions},
		{ZoneActions, v.Headings.Actions},
		{ZoneUpcoming, v.Headings.Upcoming},
		{ZoneQuestions, v.Headings.Questions},
		{ZoneGeneral, v.Headings.Ignored},
	} {
		for _, k := range foldedList(h.phrases) {
			if _, ok := lex.headings[k]; !ok {
				lex.headings[k] = h.zone
			}
		}
	}

	modal := alternation(v.ModalVerbs)
	owner := alternation(append(append([]string{}, v.ModalVerbs...), v.OwnershipVerbs...))
	date := datePattern(v)

	lex.bullet = regexp.MustCompile(`^(?:` + alternation(v.Bullets) + `\s*)+`)
	lex.headerNoise = regexp.MustCompile(`^` + alternation(v.HeaderNoise) + `\s*[:：]`)
	lex.labelLine = regexp.MustCompile(`^` + fieldGroups(v.Labels) + `\s*[:：=]\s*(.*)$`)
	lex.labelInline = regexp.MustCompile(fieldStart + fieldGroups(v.Labels) + `\s*[:：]\s*`)
	lex.prefix = regexp.MustCompile(`^(?:(` + alternation(v.Prefixes.Decisions) + `)|(` +
		alternation(v.Prefixes.Actions) + `)|(` + alternation(v.Prefixes.Upcoming) + `)|(` +
		alternation(v.Prefixes.Questions) + `))\s*[:：]\s*`)
	lex.questionLead = regexp.MustCompile(`^` + alternation(v.QuestionMarkers) + wordEnd)
	lex.upcoming = regexp.MustCompile(wordStart + alternation(v.UpcomingMarkers) + wordEnd)
	lex.contextLead = regexp.MustCompile(`^` + connectivePattern(v.ContextConnectives))
	lex.impactLead = regexp.MustCompile(`^` + connectivePattern(v.ImpactConnectives))
	lex.dateLead = regexp.MustCompile(`^(?:` + prepositionPattern(v) + `\s+)?(?:` + date + `|` + quarterPattern + `)` + wordEnd)
	lex.nameOnly = regexp.MustCompile(`^(` + namePattern + `)$`)
	lex.nameLead = regexp.MustCompile(`^(` + namePattern + `)\s*[:：]\s*(.+)$`)
	lex.modalAction = regexp.MustCompile(`^(?:[\p{L}'’-]+\s+){1,3}?` + modal + `\s+\p{L}`)

	lex.responsible = newResponsibleExtractor(v, owner, lex.acceptName, lex.labelledName)
	lex.dueDate = newDueDateExtractor(v, date)
	lex.context = newClauseExtractor(FieldContext, v.Labels.Context, v.ContextConnectives, v.ImpactConnectives)
	lex.impact = newClauseExtractor(FieldImpact, v.Labels.Impact, v.ImpactConnectives, v.ContextConnectives)
	return lex, nil
}

// heading reports the zone a whole line opens, if it is a heading.
func (l *lexicon) heading(line string) (Zone, bool) {
	s := strings.TrimLeft(line, "#")
	s = l.stripMarker(s)
	s = strings.TrimRight(s, ":： ")
	s = strings.Trim(s, "*_ ")
	zone, ok := l.headings[foldText(s)]
	return zone, ok
}

// stripMarker removes bullets, checkboxes, ordinals and markdown emphasis
func (l *lexicon) stripMarker(s string) string {
	s = strings.TrimSpace(s)
	for {
		before := s
		s = strings.TrimSpace(l.bullet.ReplaceAllString(s, ""))
		s = strings.TrimSpace(checkbox.ReplaceAllString(s, ""))
		s = strings.TrimSpace(ordinalPrefix.ReplaceAllString(s, ""))
		if s == before {
			break
		}
	}
	return strings.TrimSpace(emphasis.Replace(s))
}

func (l *lexicon) startsWithActionVerb(text string) bool {
	words := strings.Fields(foldText(text))
	for n := 1; n <= 3 && n <= len(words); n++ {
		w := strings.Trim(strings.Join(words[:n], " "), ",.;:!?")
		if _, ok := l.actionVerbs[w]; ok {
			return true
		}
	}
	return false
}

func (l *lexicon) isStopWord(tok string) bool {
	_, ok := l.stopWords[foldText(tok)]
	return ok
}

// acceptName validates a captured person name and title-cases it. Leading
// and trailing stop words are dropped ("Demain Jean" yields "Jean"); any
// other stop word or an elided article ("L'équipe") rejects the candidate.
func (l *lexicon) acceptName(raw string) (string, bool) {
	tokens := strings.Fields(strings.Trim(raw, " ,;:."))
	for len(tokens) > 0 && (l.isStopWord(tokens[0]) || isConnector(tokens[0])) {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && (l.isStopWord(tokens[len(tokens)-1]) || isConnector(tokens[len(tokens)-1])) {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 || len(tokens) > 5 {
		return "", false
	}
	for _, tok := range tokens {
		if isConnector(tok) {
			continue
		}
		if l.isStopWord(tok) || isElided(tok) {
			return "", false
		}
		first, _ := utf8.DecodeRuneInString(tok)
		if !unicode.IsLetter(first) {
			return "", false
		}
	}
	return titleName(strings.Join(tokens, " ")), true
}

func isConnector(tok string) bool {
	f := foldText(tok)
	return f == "et" || f == "and" || f == "&"
}

// isElided reports tokens like "l'équipe" or "d'Alice".
func isElided(tok string) bool {
	r := []rune(tok)
	return len(r) > 2 && (r[1] == '\'' || r[1] == '’')
}
