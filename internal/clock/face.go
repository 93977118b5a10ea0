package clock

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-pixelclock/internal/led"
	"github.com/coreman2200/funtimes-pixelclock/internal/model"
	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

// Face renders the clock onto a strip. The strip's staged buffer is the
// frame; Face only keeps the decoration needed to undo the hands.
type Face struct {
	ring       ring.Ring
	strip      led.Strip
	palette    Palette
	decoration []model.Color
}

// NewFace builds the decoration and stages it on every logical position.
func NewFace(r ring.Ring, s led.Strip, p Palette) (*Face, error) {
	if s.NumPixels() != r.Len() {
		return nil, fmt.Errorf("strip has %d pixels, ring expects %d", s.NumPixels(), r.Len())
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	f := &Face{
		ring:       r,
		strip:      s,
		palette:    p,
		decoration: Decoration(r.Len(), p),
	}
	for i, c := range f.decoration {
		r.Set(s, i, c)
	}
	log.Debug().Int("pixels", r.Len()).Int("offset", r.Offset()).Bool("reversed", r.Reversed()).Msg("clock face decorated")
	return f, nil
}

// Decoration returns a copy of the static face in logical order.
func (f *Face) Decoration() []model.Color {
	out := make([]model.Color, len(f.decoration))
	copy(out, f.decoration)
	return out
}

func (f *Face) Hands(t time.Time) [3]Hand {
	return HandsAt(t, f.ring.Len(), f.palette)
}

// Composite adds the hands for t onto whatever is staged, in the order
// second, minute, hour, and returns the logical positions it touched.
// Hands sharing a position accumulate.
func (f *Face) Composite(t time.Time) [6]int {
	var touched [6]int
	for i, h := range f.Hands(t) {
		c0, c1 := h.Weighted()
		f.add(h.Pos, c0)
		f.add(h.Next, c1)
		touched[2*i], touched[2*i+1] = h.Pos, h.Next
	}
	return touched
}

func (f *Face) add(pos int, c model.Color) {
	f.ring.Set(f.strip, pos, model.Add(f.ring.Get(f.strip, pos), c))
}

// Restore puts the decoration back on the given logical positions.
func (f *Face) Restore(positions []int) {
	for _, p := range positions {
		f.ring.Set(f.strip, p, f.decoration[f.ring.Wrap(p)])
	}
}

// RenderFrame composites the hands for t, commits the frame and restores
// the decoration so the next frame starts clean.
func (f *Face) RenderFrame(t time.Time) error {
	touched := f.Composite(t)
	err := f.strip.Show()
	f.Restore(touched[:])
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	return nil
}

// Clear blanks the whole strip.
func (f *Face) Clear() error {
	return led.Clear(f.strip)
}
