// Package scroll tracks how far elements have travelled through the
// viewport.
package scroll

import "math"

// ComputeProgress returns how far an element has travelled through the
// viewport: 0 while its top is at or below the viewport bottom, 1 once its
// bottom has passed the viewport top.
func ComputeProgress(top, height, viewportHeight float64) float64 {
	span := viewportHeight + height
	if !(span > 0) {
		return 0
	}
	p := (viewportHeight - top) / span
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}
