package view

// Reveal returns the visible count after one more page is revealed, capped
// at totalMatched. Calls at the cap leave the count unchanged.
func Reveal(visibleCount, totalMatched int) int {
	n := visibleCount + PageSize
	if n > totalMatched {
		n = totalMatched
	}
	return n
}

// ScrollPosition is a client scroll report, in pixels.
type ScrollPosition struct {
	ScrollY        float64 `json:"scrollY"`
	ViewportHeight float64 `json:"viewportHeight"`
	ContentHeight  float64 `json:"contentHeight"`
}

// NearBottom reports whether the viewport bottom is within threshold of the
// end of the content.
func (p ScrollPosition) NearBottom(threshold float64) bool {
	return p.ViewportHeight+p.ScrollY >= p.ContentHeight-threshold
}
