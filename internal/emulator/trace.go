package emulator

// TraceEntry is an executed instruction together with its address.
type TraceEntry struct {
	Address     uint16
	Instruction Instruction
}

// traceRing keeps the most recent entries in a fixed size buffer.
type traceRing struct {
	buf  []TraceEntry
	next int
	full bool
}

func newTraceRing(depth int) *traceRing {
	return &traceRing{
		buf: make([]TraceEntry, depth),
	}
}

func (r *traceRing) add(entry TraceEntry) {
	r.buf[r.next] = entry
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

func (r *traceRing) entries() []TraceEntry {
	if !r.full {
		result := make([]TraceEntry, r.next)
		copy(result, r.buf[:r.next])
		return result
	}

	result := make([]TraceEntry, 0, len(r.buf))
	result = append(result, r.buf[r.next:]...)
	result = append(result, r.buf[:r.next]...)
	return result
}

func (r *traceRing) reset() {
	r.next = 0
	r.full = false
}
