package debugui

// History is a fixed size ring of per-tick samples.
type History struct {
	samples []float32
	next    int
	full    bool
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Record(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.full = true
	}
}

// Samples returns the recorded samples, oldest first.
func (h *History) Samples() []float32 {
	if !h.full {
		return append([]float32(nil), h.samples[:h.next]...)
	}
	out := make([]float32, 0, len(h.samples))
	out = append(out, h.samples[h.next:]...)
	return append(out, h.samples[:h.next]...)
}
