package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/usecase/notes"
	"github.com/johnquangdev/meeting-notes-analyzer/pkg/jwt"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range newRootCmd().Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"analyze", "fingerprint", "token"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestAnalyzeFromStdin(t *testing.T) {
	out, err := execute(t, "Actions\nJean doit envoyer le rapport avant vendredi", "analyze", "-")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Cached)
	require.NotNil(t, report.Result)
	require.Len(t, report.Result.Actions, 1)
	assert.Equal(t, "Jean", report.Result.Actions[0].Responsible)
	assert.True(t, strings.HasPrefix(report.Fingerprint, notes.FingerprintPrefix))
}

func TestAnalyzeWithPreviousReportIsCached(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("Décisions\n- Adopter la nouvelle charte graphique\n"), 0o600))

	first, err := execute(t, "", "analyze", input)
	require.NoError(t, err)
	previous := filepath.Join(dir, "last.json")
	require.NoError(t, os.WriteFile(previous, []byte(first), 0o600))

	second, err := execute(t, "", "analyze", input, "--previous", previous)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(second), &report))
	assert.True(t, report.Cached)
	require.Len(t, report.Result.Decisions, 1)
	assert.Equal(t, "Adopter la nouvelle charte graphique", report.Result.Decisions[0].Decision)
}

func TestAnalyzeHTML(t *testing.T) {
	out, err := execute(t, "<h2>Actions</h2><ul><li>Jean doit envoyer le rapport avant vendredi</li></ul>",
		"analyze", "--format", "html", "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Result.Actions, 1)
	assert.Equal(t, "Jean doit envoyer le rapport avant vendredi", report.Result.Actions[0].Action)
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "x", "analyze", "--format", "docx")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestFingerprintIgnoresLayoutNoise(t *testing.T) {
	a, err := execute(t, "Décisions\r\n  Adopter la charte  \r\n", "fingerprint")
	require.NoError(t, err)
	b, err := execute(t, "Décisions\nAdopter la charte\n", "fingerprint")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, notes.Fingerprint(notes.Normalize("Décisions\nAdopter la charte\n"))+"\n", b)
}

func TestTokenIsAcceptedByManager(t *testing.T) {
	const userID = "5b0c8f5e-2f43-4d8e-9a55-1c4f7f0f2a10"
	out, err := execute(t, "", "token", "--secret", "s3cret", "--user", userID, "--email", "ana@example.com")
	require.NoError(t, err)

	claims, err := jwt.NewManager("s3cret", 0, "meeting-notes-analyzer").ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID.String())
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	_, err := execute(t, "", "token", "--secret", "")
	assert.ErrorContains(t, err, "secret")
}
