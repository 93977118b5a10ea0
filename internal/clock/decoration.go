package clock

import (
	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

// Decoration builds the static face for a ring of n positions: background
// everywhere, a tick every twelfth of the ring and a brighter mark every
// quarter. On a 60 position ring that is every 5th and every 15th position.
func Decoration(n int, p Palette) []model.Color {
	d := make([]model.Color, n)
	for i := range d {
		d[i] = p.Background
	}
	for k := 0; k < 12; k++ {
		d[k*n/12] = p.Tick
	}
	// quarters go last so they win where both apply
	for k := 0; k < 4; k++ {
		d[k*n/4] = p.Quarter
	}
	return d
}
