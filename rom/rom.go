package rom

// Rom is the program store: an ordered, immutable sequence of raw
// instruction lines, indexed from 0.
type Rom struct {
	lines []string
}

// New creates a program store, taking ownership of the line slice.
func New(lines []string) *Rom {
	return &Rom{lines: lines}
}

// Get returns the raw line at index. ok is false when index is outside
// [0, Len()); an out-of-range fetch is the machine's halt condition,
// not an error.
func (r *Rom) Get(index int) (line string, ok bool) {
	if index < 0 || index >= len(r.lines) {
		return
	}

	line = r.lines[index]
	ok = true
	return
}

// Len returns the number of instruction lines.
func (r *Rom) Len() int {
	return len(r.lines)
}
