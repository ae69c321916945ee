package notes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

func decision(text string) ParsedItem {
	return ParsedItem{
		Text:        text,
		Raw:         text,
		Zone:        ZoneDecisions,
		Responsible: entities.Unspecified,
		DueDate:     entities.Unspecified,
		Context:     entities.Unspecified,
		Impact:      entities.Unspecified,
	}
}

func TestClassify(t *testing.T) {
	a := Default()

	owned := decision("Refonte du site")
	owned.Responsible = "Jean"
	dated := decision("Refonte du site")
	dated.DueDate = "fin mars"
	upcoming := decision("Valider la maquette")
	upcoming.Zone = ZoneUpcoming

	tests := []struct {
		name string
		item ParsedItem
		want Zone
	}{
		{"action verb", decision("Valider le budget Q3"), ZoneActions},
		{"multi-word action verb", decision("Mettre à jour la documentation"), ZoneActions},
		{"modal with subject", decision("Le prestataire va livrer les maquettes"), ZoneActions},
		{"modal with proper noun", decision("Karim devrait relancer la banque"), ZoneActions},
		{"resolved owner", owned, ZoneActions},
		{"resolved due date", dated, ZoneActions},
		{"decision stays", decision("Adopter la nouvelle charte graphique"), ZoneDecisions},
		{"other zones untouched", upcoming, ZoneUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Classify([]ParsedItem{tt.item})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Zone)
		})
	}
}

func TestDedupe(t *testing.T) {
	items := []ParsedItem{
		decision("Adopter la charte"),
		decision("adopter  la CHARTE"),
		{Text: "Adopter la charte", Zone: ZoneActions},
		decision("Changer de banque"),
		{Text: "ignored", Zone: ZoneGeneral},
	}

	got := Dedupe(items)

	require.Len(t, got, 3)
	assert.Equal(t, "Adopter la charte", got[0].Text)
	assert.Equal(t, ZoneActions, got[1].Zone)
	assert.Equal(t, "Changer de banque", got[2].Text)
}

func TestDedupeCaps(t *testing.T) {
	var items []ParsedItem
	for i := 0; i < 50; i++ {
		items = append(items,
			decision(fmt.Sprintf("Décision %d", i)),
			ParsedItem{Text: fmt.Sprintf("Action %d", i), Zone: ZoneActions},
			ParsedItem{Text: fmt.Sprintf("Question %d ?", i), Zone: ZoneQuestions},
			ParsedItem{Text: fmt.Sprintf("Sujet %d", i), Zone: ZoneUpcoming},
		)
	}

	result := Assemble(Dedupe(items))

	assert.Len(t, result.Decisions, entities.MaxDecisions)
	assert.Len(t, result.Actions, entities.MaxActions)
	assert.Len(t, result.ClarificationPoints, entities.MaxClarificationPoints)
	assert.Len(t, result.UpcomingPoints, entities.MaxUpcomingPoints)
	assert.Equal(t, "Décision 0", result.Decisions[0].Decision)
	assert.Equal(t, "Décision 19", result.Decisions[19].Decision)
}

func TestAssembleUsesSentinel(t *testing.T) {
	result := Assemble([]ParsedItem{
		{Text: "Adopter Go", Zone: ZoneDecisions},
		{Text: "Envoyer le devis", Zone: ZoneActions, Responsible: "Paul"},
	})

	assert.Equal(t, []entities.DecisionRecord{{
		Decision: "Adopter Go", Context: entities.Unspecified, ImpactPotential: entities.Unspecified,
	}}, result.Decisions)
	assert.Equal(t, []entities.ActionRecord{{
		Action: "Envoyer le devis", Responsible: "Paul", DueDate: entities.Unspecified,
	}}, result.Actions)
	assert.NotNil(t, result.ClarificationPoints)
	assert.NotNil(t, result.UpcomingPoints)
}
