package grammar

import "fmt"

// Selection is the policy that breaks ties between candidates in the same
// score bucket.
type Selection int

const (
	// SelectRandom picks a candidate uniformly at random.
	SelectRandom Selection = iota
	// SelectMDL prefers rule reuse, then the lowest rule cost.
	SelectMDL
	// SelectLevel prefers rule reuse, then the shallowest tree node.
	SelectLevel
	// SelectLevelMDL prefers rule reuse, then (level, cost) lexicographically.
	SelectLevelMDL
)

var selectionNames = [...]string{
	SelectRandom:   "random",
	SelectMDL:      "mdl",
	SelectLevel:    "level",
	SelectLevelMDL: "level_mdl",
}

func (s Selection) String() string {
	if s < 0 || int(s) >= len(selectionNames) {
		return fmt.Sprintf("Selection(%d)", int(s))
	}

	return selectionNames[s]
}

// PrefersReuse reports whether the policy short-circuits on a candidate whose
// rule already exists in the grammar.
func (s Selection) PrefersReuse() bool {
	return s == SelectMDL || s == SelectLevel || s == SelectLevelMDL
}

// ParseSelection maps "random", "mdl", "level" or "level_mdl" to a Selection.
func ParseSelection(s string) (Selection, error) {
	for i, name := range selectionNames {
		if name == s {
			return Selection(i), nil
		}
	}

	return 0, fmt.Errorf("ParseSelection(%q): %w", s, ErrUnknownSelection)
}
