package notes

// Classify moves action-shaped decisions to ZoneActions. A decision is an
// action when it already has an owner or a due date, when it starts with an
// infinitive action verb, or when it reads "<subject> va/doit/... <verb>".
// Items in other zones are left untouched.
func (a *Analyzer) Classify(items []ParsedItem) []ParsedItem {
	for i := range items {
		if items[i].Zone == ZoneDecisions && a.looksLikeAction(items[i]) {
			items[i].Zone = ZoneActions
		}
	}
	return items
}

func (a *Analyzer) looksLikeAction(it ParsedItem) bool {
	switch {
	case resolved(it.Responsible), resolved(it.DueDate):
		return true
	case a.lex.startsWithActionVerb(it.Text):
		return true
	case a.lex.modalAction.MatchString(it.Text):
		return true
	}
	return false
}

// resolveGeneral decides what the fallback bucket contributes. Without any
// heading every General item is a decision candidate, or an upcoming point
// when it mentions an upcoming marker. When headings exist, General items
// are dropped; questions and prefixed statements already left General.
func (a *Analyzer) resolveGeneral(items []ParsedItem, headingsFound bool) []ParsedItem {
	out := make([]ParsedItem, 0, len(items))
	for _, it := range items {
		if it.Zone != ZoneGeneral {
			out = append(out, it)
			continue
		}
		if headingsFound {
			continue
		}
		if a.lex.upcoming.MatchString(it.Raw) {
			it.Zone = ZoneUpcoming
			it.Text = it.Raw
		} else {
			it.Zone = ZoneDecisions
		}
		out = append(out, it)
	}
	return out
}
