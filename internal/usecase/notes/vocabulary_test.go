package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extension = `
vocabulary:
  headings:
    decisions: ["Ce qu'on a décidé"]
  action_verbs: [arbitrer]
  weekdays: [lundi]
`

func TestParseVocabularyExtendsDefaults(t *testing.T) {
	v, err := ParseVocabulary([]byte(extension))
	require.NoError(t, err)

	assert.Contains(t, v.ActionVerbs, "arbitrer")
	assert.Contains(t, v.ActionVerbs, "préparer")
	assert.Contains(t, v.Headings.Decisions, "Ce qu'on a décidé")
	assert.Len(t, v.Weekdays, len(DefaultVocabulary().Weekdays), "duplicates are not appended twice")
}

func TestParseVocabularyReplace(t *testing.T) {
	v, err := ParseVocabulary([]byte("replace: true\nvocabulary:\n  action_verbs: [arbitrer]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"arbitrer"}, v.ActionVerbs)
	assert.Empty(t, v.Headings.Decisions)

	// An empty vocabulary still compiles into a working analyzer.
	a, err := New(Config{Vocabulary: &v})
	require.NoError(t, err)
	out := analyze(t, a, "Arbitrer le planning")
	assert.Len(t, out.Result.Actions, 1)
}

func TestParseVocabularyInvalid(t *testing.T) {
	_, err := ParseVocabulary([]byte("vocabulary: [unterminated"))
	assert.Error(t, err)
}

func TestLoadVocabulary(t *testing.T) {
	v, err := LoadVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVocabulary(), v)

	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(extension), 0o600))
	v, err = LoadVocabulary(path)
	require.NoError(t, err)
	assert.Contains(t, v.ActionVerbs, "arbitrer")

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAnalyzerUsesExtendedVocabulary(t *testing.T) {
	v, err := ParseVocabulary([]byte(extension))
	require.NoError(t, err)
	a, err := New(Config{Vocabulary: &v})
	require.NoError(t, err)

	out := analyze(t, a, "Ce qu’on a décidé :\n- Arbitrer le planning\n- Garder le prestataire actuel")

	require.Len(t, out.Result.Actions, 1)
	assert.Equal(t, "Arbitrer le planning", out.Result.Actions[0].Action)
	require.Len(t, out.Result.Decisions, 1)
	assert.Equal(t, "Garder le prestataire actuel", out.Result.Decisions[0].Decision)
}
