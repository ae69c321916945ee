package notes

import "github.com/johnquangdev/meeting-notes-analyzer/internal/domain/entities"

// categoryCaps is the maximum number of entries kept per output category
var categoryCaps = map[Zone]int{
	ZoneDecisions: entities.MaxDecisions,
	ZoneActions:   entities.MaxActions,
	ZoneQuestions: entities.MaxClarificationPoints,
	ZoneUpcoming:  entities.MaxUpcomingPoints,
}

// Dedupe drops repeated items within each category, comparing text
// case-insensitively with whitespace collapsed, keeps the first occurrence
// and then enforces the category caps. Items must be in document order.
// State is local to the call.
func Dedupe(items []ParsedItem) []ParsedItem {
	seen := make(map[Zone]map[string]struct{}, len(categoryCaps))
	out := make([]ParsedItem, 0, len(items))
	for _, it := range items {
		limit, ok := categoryCaps[it.Zone]
		if !ok {
			continue
		}
		keys := seen[it.Zone]
		if keys == nil {
			keys = make(map[string]struct{})
			seen[it.Zone] = keys
		}
		key := foldKey(it.Text)
		if key == "" {
			continue
		}
		if _, dup := keys[key]; dup {
			continue
		}
		if len(keys) >= limit {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
