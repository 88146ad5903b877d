package model

// SelectionState tracks the summaries marked for a bulk action. Active is
// true iff the set is non-empty or selection mode was entered explicitly via
// long-press; draining the set through individual deselection clears it.
type SelectionState struct {
	Active bool
	IDs    map[string]bool
}

// Selected reports whether the given summary id is in the selection set.
func (s SelectionState) Selected(id string) bool {
	return s.IDs[id]
}

// Count returns the number of selected summaries.
func (s SelectionState) Count() int {
	return len(s.IDs)
}
