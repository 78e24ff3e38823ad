package store

// LineRing keeps the most recently dispatched lines with their severities
// for the monitor view. Unlike ByteRing it overwrites the oldest entry when
// full.
type LineRing struct {
	lines   []string
	sevs    []uint8
	start   int
	size    int
	version uint64
}

func NewLineRing(capacity int) *LineRing {
	if capacity <= 0 {
		capacity = 1
	}
	return &LineRing{lines: make([]string, capacity), sevs: make([]uint8, capacity)}
}

func (r *LineRing) Append(line string, sev uint8) {
	if len(r.lines) == 0 {
		return
	}
	idx := (r.start + r.size) % len(r.lines)
	r.lines[idx] = line
	r.sevs[idx] = sev
	r.version++
	if r.size < len(r.lines) {
		r.size++
		return
	}
	r.start = (r.start + 1) % len(r.lines)
}

func (r *LineRing) Items() ([]string, []uint8) {
	lines := make([]string, r.size)
	sevs := make([]uint8, r.size)
	for i := 0; i < r.size; i++ {
		idx := (r.start + i) % len(r.lines)
		lines[i] = r.lines[idx]
		sevs[i] = r.sevs[idx]
	}
	return lines, sevs
}

func (r *LineRing) Len() int {
	return r.size
}

func (r *LineRing) Clear() {
	for i := range r.lines {
		r.lines[i] = ""
		r.sevs[i] = 0
	}
	r.start = 0
	r.size = 0
	r.version++
}

func (r *LineRing) Version() uint64 {
	return r.version
}
