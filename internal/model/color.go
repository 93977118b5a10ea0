package model

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	RED_OFFSET   uint8 = 0x10
	GREEN_OFFSET uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// Color is a packed 0x00RRGGBB value, the layout the ws281x drivers expect.
type Color uint32

// Palette entries used by the clock defaults.
const (
	Black Color = 0x000000
	Red   Color = 0xFF0000
	Green Color = 0x008000
	Lime  Color = 0x00FF00
	Blue  Color = 0x0000FF
	White Color = 0xFFFFFF
)

func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<RED_OFFSET | uint32(g)<<GREEN_OFFSET | uint32(b)<<BLUE_OFFSET)
}

func getcolor(c Color, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((uint32(c) & mask) >> off)
}

func (c Color) R() uint8 { return getcolor(c, RED_OFFSET) }
func (c Color) G() uint8 { return getcolor(c, GREEN_OFFSET) }
func (c Color) B() uint8 { return getcolor(c, BLUE_OFFSET) }

// Scale multiplies each channel by factor independently, truncating toward
// zero and clamping into [0,255]. Channels never bleed into each other.
func Scale(c Color, factor float64) Color {
	return RGB(
		clampChannel(float64(c.R())*factor),
		clampChannel(float64(c.G())*factor),
		clampChannel(float64(c.B())*factor),
	)
}

// Add is a per-channel saturating sum.
func Add(a, b Color) Color {
	return RGB(
		satAdd(a.R(), b.R()),
		satAdd(a.G(), b.G()),
		satAdd(a.B(), b.B()),
	)
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}

func clampChannel(v float64) uint8 {
	// !(v > 0) also catches NaN
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// ParseColor accepts "#rrggbb" hex notation.
func ParseColor(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return RGB(r, g, b), nil
}

// MarshalYAML/UnmarshalYAML let colors live in config.yaml as hex strings.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
