package reconcile

import "strings"

// IsPlaceholder reports whether id was minted by a client for an unsaved row.
func IsPlaceholder(id string) bool {
	return strings.HasPrefix(id, PlaceholderPrefix)
}

// IsReal reports whether id refers to a (possibly) persisted row.
func IsReal(id string) bool {
	return id != "" && !IsPlaceholder(id)
}

// BuildPlan diffs the persisted ids against the incoming ids.
// It performs no I/O; Reconcile executes the result.
func BuildPlan(persisted, incoming []string) *Plan {
	// 1. Index what is stored and what the client still references
	stored := make(map[string]struct{}, len(persisted))
	for _, id := range persisted {
		stored[id] = struct{}{}
	}
	plan := &Plan{Actions: make([]Action, 0, len(incoming))}
	kept := make(map[string]struct{}, len(incoming))
	for _, id := range incoming {
		if !IsReal(id) {
			continue
		}
		if _, dup := kept[id]; dup {
			plan.Duplicates = append(plan.Duplicates, id)
			continue
		}
		kept[id] = struct{}{}
	}

	// 2. Anything stored but no longer referenced is deleted
	for _, id := range persisted {
		if _, ok := kept[id]; !ok {
			plan.Deletes = append(plan.Deletes, id)
		}
	}

	// 3. One action per incoming item
	for i, id := range incoming {
		action := Action{Type: ActionCreate, Index: i, ID: id}
		if IsReal(id) {
			if _, ok := stored[id]; ok {
				action.Type = ActionUpdate
			} else {
				action.Stale = true
			}
		}
		plan.Actions = append(plan.Actions, action)
	}

	return plan
}
