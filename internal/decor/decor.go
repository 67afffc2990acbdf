// Package decor generates the floating bubble decorations rendered behind
// page sections.
//
// A decoration list is a pure function of its seed key and count, so the
// server-rendered markup and any later client re-render agree exactly.
package decor

import (
	"fmt"
	"html/template"
	"strconv"

	apperrors "github.com/Zachkp/portfolio/internal/platform/errors"
	"github.com/Zachkp/portfolio/internal/seeded"
)

// Particle describes one decorative bubble.
type Particle struct {
	ID       int     `json:"id"`
	Size     float64 `json:"size"`     // px, [8,20)
	X        float64 `json:"x"`        // percent of container width, [0,100)
	Delay    float64 `json:"delay"`    // seconds, [0,6)
	Duration float64 `json:"duration"` // seconds, [10,18)
}

// SeedString returns the string hashed to seed the list for seedKey and count.
func SeedString(seedKey string, count int) string {
	return "bubbles:" + seedKey + ":" + strconv.Itoa(count)
}

// Generate returns count particles for seedKey.
func Generate(seedKey string, count int) ([]Particle, error) {
	if count < 0 {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, fmt.Sprintf("bubble count must be >= 0, got %d", count))
	}

	next := seeded.FromString(SeedString(seedKey, count))
	particles := make([]Particle, count)
	for i := range particles {
		// Products are converted explicitly so they are rounded before the
		// add; a fused multiply-add would change the low bits per platform.
		particles[i] = Particle{
			ID:       i,
			Size:     float64(next()*12) + 8,
			X:        float64(next() * 100),
			Delay:    float64(next() * 6),
			Duration: 10 + float64(next()*8),
		}
	}
	return particles, nil
}

// Style renders the particle as inline CSS custom properties.
func (p Particle) Style() template.CSS {
	return template.CSS(fmt.Sprintf(
		"--bubble-size: %spx; --bubble-x: %s%%; --bubble-delay: %ss; --bubble-duration: %ss",
		formatFloat(p.Size),
		formatFloat(p.X),
		formatFloat(p.Delay),
		formatFloat(p.Duration),
	))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
