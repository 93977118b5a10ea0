// Package ring maps logical clock-face positions onto the physical LED
// indices of a circular strip.
package ring

import (
	"fmt"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

// Surface is the part of a strip that addressing needs.
type Surface interface {
	SetPixelColor(index int, c model.Color)
	GetPixelColor(index int) model.Color
}

// Ring is immutable once built. Offset moves logical position 0 to where the
// connector sits; Reversed means the strip is wound counter to the face.
type Ring struct {
	pixels   int
	offset   int
	reversed bool
}

func New(pixels, offset int, reversed bool) (Ring, error) {
	if pixels <= 0 {
		return Ring{}, fmt.Errorf("invalid pixel count: %d", pixels)
	}
	return Ring{pixels: pixels, offset: offset, reversed: reversed}, nil
}

func (r Ring) Len() int       { return r.pixels }
func (r Ring) Offset() int    { return r.offset }
func (r Ring) Reversed() bool { return r.reversed }

// Wrap normalizes any integer onto 0..Len()-1.
func (r Ring) Wrap(p int) int {
	m := p % r.pixels
	if m < 0 {
		m += r.pixels
	}
	return m
}

// Physical returns the driver index for a logical position. Any integer is
// accepted, including negative ones.
func (r Ring) Physical(logical int) int {
	// both terms are wrapped first so the sum cannot overflow
	m := r.Wrap(r.Wrap(r.offset) + r.Wrap(logical))
	if r.reversed {
		return r.pixels - 1 - m
	}
	return m
}

// Logical is the inverse of Physical on 0..Len()-1.
func (r Ring) Logical(physical int) int {
	p := r.Wrap(physical)
	if r.reversed {
		p = r.pixels - 1 - p
	}
	return r.Wrap(p - r.Wrap(r.offset))
}

func (r Ring) Set(s Surface, logical int, c model.Color) {
	s.SetPixelColor(r.Physical(logical), c)
}

func (r Ring) Get(s Surface, logical int) model.Color {
	return s.GetPixelColor(r.Physical(logical))
}
