package notes

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	lineBreaks = strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		"\u2028", "\n",
		"\u2029", "\n",
		"\u0085", "\n",
	)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// Normalize canonicalizes raw notes text. Line endings become "\n", every
// Unicode space becomes a single ASCII space, control and format
// characters are dropped, each line is trimmed and runs of blank lines are
// collapsed to one. Invalid UTF-8 sequences are removed. Normalize never
// fails and is idempotent.
func Normalize(raw string) string {
	s := strings.ToValidUTF8(raw, "")
	s = lineBreaks.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteByte('\n')
		case r == '\t' || r == '\v' || r == '\f' || unicode.Is(unicode.Zs, r):
			b.WriteByte(' ')
		case unicode.IsControl(r) || unicode.Is(unicode.Cf, r):
		default:
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	out := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.Trim(out, "\n")
}
