package deconstruct

import "sort"

// ChangeKind classifies one attribute-level schema change.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Altered ChangeKind = "altered"
)

// Change records one difference between two attribute sets.
type Change struct {
	Name string
	Kind ChangeKind
	Old  *Form // nil for Added
	New  *Form // nil for Removed
}

// Diff compares two attribute sets by form equality and returns the
// changes sorted by attribute name. Attributes whose forms compare equal
// are omitted.
func Diff(old, next map[string]Form) []Change {
	var out []Change
	for name, of := range old {
		o := of
		nf, ok := next[name]
		if !ok {
			out = append(out, Change{Name: name, Kind: Removed, Old: &o})
			continue
		}
		if !o.Equal(nf) {
			n := nf
			out = append(out, Change{Name: name, Kind: Altered, Old: &o, New: &n})
		}
	}
	for name, nf := range next {
		if _, ok := old[name]; ok {
			continue
		}
		n := nf
		out = append(out, Change{Name: name, Kind: Added, New: &n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
