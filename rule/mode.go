package rule

import "fmt"

// Mode selects how much boundary information a rule's RHS retains.
type Mode int

const (
	// ModeFull keeps every boundary edge in the RHS, attached to external
	// stub vertices.
	ModeFull Mode = iota
	// ModePart keeps only each RHS vertex's boundary degree.
	ModePart
	// ModeNo keeps no boundary information.
	ModeNo
)

var modeNames = [...]string{
	ModeFull: "full",
	ModePart: "part",
	ModeNo:   "no",
}

// String returns "full", "part" or "no".
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "full", "part" or "no" to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}
