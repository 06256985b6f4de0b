package diff

import "sort"

// ChangeKind classifies how a variable differs between two sets.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// VariableChange describes one variable that differs between two sets.
type VariableChange struct {
	Name string
	Kind ChangeKind
	Old  string
	New  string
}

// DiffVariables compares two variable maps and returns the changes sorted by
// variable name. Variables present in both sets with equal values are
// omitted.
func DiffVariables(before, after map[string]string) []VariableChange {
	names := make(map[string]struct{}, len(before)+len(after))
	for name := range before {
		names[name] = struct{}{}
	}
	for name := range after {
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var changes []VariableChange
	for _, name := range sorted {
		oldValue, hasOld := before[name]
		newValue, hasNew := after[name]
		switch {
		case !hasOld:
			changes = append(changes, VariableChange{Name: name, Kind: ChangeAdded, New: newValue})
		case !hasNew:
			changes = append(changes, VariableChange{Name: name, Kind: ChangeRemoved, Old: oldValue})
		case oldValue != newValue:
			changes = append(changes, VariableChange{Name: name, Kind: ChangeModified, Old: oldValue, New: newValue})
		}
	}
	return changes
}
