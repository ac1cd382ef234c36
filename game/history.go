package game

const (
	historySize = 5
	// a repeat within this many generations counts as stagnant (period 1 to 3)
	stagnationWindow = 3
)

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Observe records hash and reports whether it repeats one of the last
// stagnationWindow generations (still life or short oscillator)
func (h *History) Observe(hash string) bool {
	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-stagnationWindow; i-- {
		if h.hashes[i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only last states to detect cycles
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
