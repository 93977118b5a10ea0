package clock

import (
	"math"
	"time"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

type HandKind int

const (
	Second HandKind = iota
	Minute
	Hour
)

func (k HandKind) String() string {
	switch k {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	}
	return "unknown"
}

// Hand is one indicator spread over two adjacent logical positions. Blend is
// the share of Color drawn at Next; Pos gets the rest.
type Hand struct {
	Kind  HandKind
	Pos   int
	Next  int
	Blend float64
	Color model.Color
}

// Weighted returns the colors drawn at Pos and Next.
func (h Hand) Weighted() (model.Color, model.Color) {
	return model.Scale(h.Color, 1.0-h.Blend), model.Scale(h.Color, h.Blend)
}

// place maps a face unit (0..59) plus its blend onto a ring of n positions.
func place(unit int, blend float64, n int) (pos, next int, frac float64) {
	if n == FaceUnits {
		pos = unit % n
		return pos, (pos + 1) % n, blend
	}
	scaled := (float64(unit) + blend) * float64(n) / FaceUnits
	whole := math.Floor(scaled)
	pos = int(whole) % n
	return pos, (pos + 1) % n, scaled - whole
}

// HandsAt places the three hands for wall-clock time t on a ring of n
// positions. The hour hand moves one position every 12 minutes.
func HandsAt(t time.Time, n int, p Palette) [3]Hand {
	hh, mm, ss := t.Clock()
	frac := float64(t.Nanosecond()) / float64(time.Second)

	var hands [3]Hand

	pos, next, blend := place(ss, frac, n)
	hands[Second] = Hand{Kind: Second, Pos: pos, Next: next, Blend: blend, Color: model.Scale(p.Second, p.SecondScale)}

	pos, next, blend = place(mm, (float64(ss)+frac)/60.0, n)
	hands[Minute] = Hand{Kind: Minute, Pos: pos, Next: next, Blend: blend, Color: model.Scale(p.Minute, p.MinuteScale)}

	h := hh % 12
	segment := float64((mm*60+ss)%720) / 719.0
	pos, next, blend = place((h*60+mm)/12, segment, n)
	hands[Hour] = Hand{Kind: Hour, Pos: pos, Next: next, Blend: blend, Color: model.Scale(p.Hour, p.HourScale)}

	return hands
}
