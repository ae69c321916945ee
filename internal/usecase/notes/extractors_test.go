package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

func TestResponsibleExtractor(t *testing.T) {
	x := Default().lex.responsible
	tests := []struct {
		text string
		want string
		rule string
	}{
		{"Jean doit envoyer le rapport", "Jean", "subject-verb"},
		{"Marie et Paul vont préparer la démo", "Marie et Paul", "subject-verb"},
		{"ÉLODIE s'occupe du devis", "Élodie", "subject-verb"},
		{"@jean.dupont relance le client", "Jean Dupont", "mention"},
		{"Responsable: Sophie", "Sophie", "responsible-label"},
		{"Dossier confié à Karim", "Karim", "assignment"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, rule, ok := x.Match(tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestResponsibleExtractorRejectsPronouns(t *testing.T) {
	x := Default().lex.responsible
	for _, text := range []string{
		"Il doit relancer le client",
		"L'équipe va livrer lundi",
		"Nous allons adopter Go",
		"le client doit valider",
	} {
		assert.Equal(t, entities.Unspecified, x.Extract(text, nil), text)
	}
}

func TestDueDateExtractor(t *testing.T) {
	x := Default().lex.dueDate
	tests := []struct {
		text string
		want string
	}{
		{"Jean doit envoyer le rapport avant vendredi", "avant vendredi"},
		{"Livrer le 12/03/2025", "le 12/03/2025"},
		{"Publier la note la semaine prochaine", "la semaine prochaine"},
		{"Faire le point demain matin", "demain"},
		{"Échéance : fin mars", "fin mars"},
		{"Migrer la base d'ici 2 semaines", "d'ici 2 semaines"},
		{"Clôturer le lot 2025-06-30", "2025-06-30"},
		{"Sans aucune date", entities.Unspecified},
		{"Valider le budget Q3", entities.Unspecified},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, x.Extract(tt.text, nil))
		})
	}
}

func TestClauseExtractors(t *testing.T) {
	a := Default()

	assert.Equal(t, "le serveur est instable",
		a.lex.context.Extract("Reporter la sortie car le serveur est instable. Autre point", nil))

	text := "Changer de fournisseur suite à l'audit, ce qui implique un surcoût"
	assert.Equal(t, "l'audit", a.lex.context.Extract(text, nil))
	assert.Equal(t, "un surcoût", a.lex.impact.Extract(text, nil))

	assert.Equal(t, "hausse des coûts", a.lex.impact.Extract("Impact : hausse des coûts", nil))
	assert.Equal(t, entities.Unspecified, a.lex.context.Extract("Adopter Go", nil))
}

func TestExtractPrecedence(t *testing.T) {
	x := Default().lex.dueDate

	window := ContextWindow{"(à livrer lundi)"}
	assert.Equal(t, "lundi", x.Extract("Envoyer le devis avant vendredi", window),
		"window lines take precedence over the statement")
	assert.Equal(t, "mardi", x.Resolve("mardi", "Envoyer le devis avant vendredi", window),
		"inline metadata takes precedence over everything")
	assert.Equal(t, "avant vendredi", x.Resolve(entities.Unspecified, "Envoyer le devis avant vendredi", nil))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "Jean", cleanValue("  — Jean, "))
	assert.Equal(t, "le client attend", cleanValue("le client attend)"))

	long := ""
	for i := 0; i < 60; i++ {
		long += "mot "
	}
	got := cleanValue(long)
	assert.LessOrEqual(t, len([]rune(got)), maxValueRunes)
	assert.NotContains(t, got[len(got)-1:], " ")
}
