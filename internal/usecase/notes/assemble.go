package notes

import (
	"sort"

	"github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"
)

// sortByLine orders items by their document line; items from the same line
// keep their relative order.
func sortByLine(items []ParsedItem) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Line < items[j].Line })
}

// Assemble maps classified, deduplicated items to the result record. Every
// category is a non-nil slice and unresolved metadata reads
// entities.Unspecified.
func Assemble(items []ParsedItem) entities.AnalysisResult {
	result := entities.NewAnalysisResult()
	for _, it := range items {
		switch it.Zone {
		case ZoneDecisions:
			result.Decisions = append(result.Decisions, entities.DecisionRecord{
				Decision:        it.Text,
				Context:         orUnspecified(it.Context),
				ImpactPotential: orUnspecified(it.Impact),
			})
		case ZoneActions:
			result.Actions = append(result.Actions, entities.ActionRecord{
				Action:      it.Text,
				Responsible: orUnspecified(it.Responsible),
				DueDate:     orUnspecified(it.DueDate),
			})
		case ZoneQuestions:
			result.ClarificationPoints = append(result.ClarificationPoints, it.Text)
		case ZoneUpcoming:
			result.UpcomingPoints = append(result.UpcomingPoints, it.Text)
		}
	}
	return result
}
