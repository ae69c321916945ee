package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "headings and list items",
			in:   `<h2>Décisions</h2><ul><li>Adopter <b>Go</b></li><li><p>Jean fera le devis avant vendredi</p></li></ul>`,
			want: "Décisions\n- Adopter Go\n- Jean fera le devis avant vendredi",
		},
		{
			name: "scripts and styles dropped",
			in:   `<style>p{color:red}</style><p>Point&nbsp;ouvert&nbsp;?</p><script>alert("x")</script>`,
			want: "Point ouvert ?",
		},
		{
			name: "entities and line breaks",
			in:   `<p>Contexte&nbsp;: budget<br>Impact : délais &amp; coûts</p>`,
			want: "Contexte : budget\nImpact : délais & coûts",
		},
		{
			name: "wrapped text inside a paragraph",
			in:   "<p>Valider\n   le planning</p><div>Prochaine réunion</div>",
			want: "Valider le planning\nProchaine réunion",
		},
		{
			name: "preformatted text kept",
			in:   "<pre>- a\n- b</pre>",
			want: "- a\n- b",
		},
		{
			name: "malformed markup",
			in:   "<ul><li>Une action<li>Une autre",
			want: "- Une action\n- Une autre",
		},
		{
			name: "plain text passes through",
			in:   "Actions\n- Relancer Paul",
			want: "Actions - Relancer Paul",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notes.Normalize(htmlToText(tt.in)))
		})
	}
}
