package led

import (
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

// Sim is a memory-only strip. It keeps the last committed frame so callers
// can inspect what a real display would be showing.
type Sim struct {
	Buffer
	frames int
	shown  []model.Color
	closed bool
}

func NewSim(n int) *Sim {
	return &Sim{Buffer: NewBuffer(n), shown: make([]model.Color, n)}
}

func (s *Sim) Begin() error { return nil }

func (s *Sim) Show() error {
	copy(s.shown, s.px)
	s.frames++
	if s.frames%250 == 0 {
		log.Debug().Int("frames", s.frames).Msg("sim strip")
	}
	return nil
}

func (s *Sim) Close() error {
	s.closed = true
	return nil
}

// Frames reports how many times Show was called.
func (s *Sim) Frames() int { return s.frames }

// Shown returns a copy of the last committed frame in physical order.
func (s *Sim) Shown() []model.Color {
	out := make([]model.Color, len(s.shown))
	copy(out, s.shown)
	return out
}

func (s *Sim) Closed() bool { return s.closed }
