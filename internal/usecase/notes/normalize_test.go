package notes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "line endings", in: "a\r\nb\rc\u2028d\u2029e", want: "a\nb\nc\nd\ne"},
		{name: "unicode spaces", in: "hello\u00a0\u202fworld\t!\u2003ok", want: "hello world ! ok"},
		{name: "collapse blank lines", in: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "whitespace-only lines count as blank", in: "a \n \n\t\n b", want: "a\n\nb"},
		{name: "trim document", in: "\n\n  a  \n\n", want: "a"},
		{name: "control characters", in: "a\x00b\x07c\u200bd\ufeff", want: "abcd"},
		{name: "invalid utf-8 dropped", in: "caf\xffé", want: "café"},
		{name: "single character", in: "x", want: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"  Décisions :\r\n\r\n\r\n- Adopter Go  \t\n\n\n",
		strings.Repeat("x \n", 10),
		"\x01\x02",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Décisions\n- Adopter Go")
	b := Fingerprint("Décisions\n- Adopter Go")
	c := Fingerprint("Décisions\n- Adopter Rust")

	require.True(t, strings.HasPrefix(a, FingerprintPrefix))
	assert.Len(t, a, len(FingerprintPrefix)+64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, Fingerprint(Normalize("a\r\nb")), Fingerprint(Normalize("a\nb")))
}
