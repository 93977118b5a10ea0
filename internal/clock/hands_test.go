package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

func at(h, m, s, ns int) time.Time {
	return time.Date(2024, time.March, 9, h, m, s, ns, time.UTC)
}

func TestSecondHandAtStartOfSecond(t *testing.T) {
	hands := HandsAt(at(0, 0, 17, 0), 60, DefaultPalette())
	s := hands[Second]
	assert.Equal(t, 17, s.Pos)
	assert.Equal(t, 18, s.Next)
	assert.Equal(t, 0.0, s.Blend)
	assert.Equal(t, model.RGB(0x7F, 0, 0), s.Color, "second hand is red at half brightness")

	c0, c1 := s.Weighted()
	assert.Equal(t, model.RGB(0x7F, 0, 0), c0)
	assert.Equal(t, model.Black, c1)
}

func TestSecondHandWeightsInvert(t *testing.T) {
	s := HandsAt(at(0, 0, 17, 999999999), 60, DefaultPalette())[Second]
	c0, c1 := s.Weighted()
	assert.Equal(t, model.Black, c0)
	assert.GreaterOrEqual(t, c1.R(), uint8(0x7E))

	s = HandsAt(at(0, 0, 17, 500000000), 60, DefaultPalette())[Second]
	c0, c1 = s.Weighted()
	assert.Equal(t, c0, c1)
	assert.Equal(t, uint8(63), c0.R())
}

func TestSecondHandWraps(t *testing.T) {
	s := HandsAt(at(0, 0, 59, 0), 60, DefaultPalette())[Second]
	assert.Equal(t, 59, s.Pos)
	assert.Equal(t, 0, s.Next)
}

func TestMinuteHandBlendsOverTheMinute(t *testing.T) {
	m := HandsAt(at(3, 42, 30, 0), 60, DefaultPalette())[Minute]
	assert.Equal(t, 42, m.Pos)
	assert.Equal(t, 43, m.Next)
	assert.InDelta(t, 0.5, m.Blend, 1e-9)
	c0, c1 := m.Weighted()
	assert.Equal(t, model.RGB(0, 0x40, 0), c0)
	assert.Equal(t, model.RGB(0, 0x40, 0), c1)

	m = HandsAt(at(3, 59, 15, 250000000), 60, DefaultPalette())[Minute]
	assert.Equal(t, 59, m.Pos)
	assert.Equal(t, 0, m.Next)
	assert.InDelta(t, 15.25/60, m.Blend, 1e-9)
}

var TestHourHandIsExpected = []struct {
	H, M, S int
	Pos     int
	Blend   float64
}{
	{0, 0, 0, 0, 0},
	{0, 30, 0, 2, 360.0 / 719},
	{0, 35, 59, 2, 1},
	{0, 36, 0, 3, 0},
	{12, 0, 0, 0, 0},
	{3, 0, 0, 15, 0},
	{15, 12, 0, 16, 0},
	{11, 59, 59, 59, 1},
	{23, 48, 6, 59, 6.0 / 719},
}

func TestHourHand(t *testing.T) {
	for _, v := range TestHourHandIsExpected {
		h := HandsAt(at(v.H, v.M, v.S, 0), 60, DefaultPalette())[Hour]
		assert.Equal(t, v.Pos, h.Pos, "%02d:%02d:%02d", v.H, v.M, v.S)
		assert.Equal(t, (v.Pos+1)%60, h.Next, "%02d:%02d:%02d", v.H, v.M, v.S)
		assert.InDelta(t, v.Blend, h.Blend, 1e-9, "%02d:%02d:%02d", v.H, v.M, v.S)
		assert.Equal(t, model.Blue, h.Color)
	}
}

func TestHourHandAtSegmentEdge(t *testing.T) {
	h := HandsAt(at(0, 35, 59, 0), 60, DefaultPalette())[Hour]
	c0, c1 := h.Weighted()
	assert.Equal(t, model.Black, c0)
	assert.Equal(t, model.Blue, c1)

	h = HandsAt(at(0, 36, 0, 0), 60, DefaultPalette())[Hour]
	c0, c1 = h.Weighted()
	assert.Equal(t, model.Blue, c0)
	assert.Equal(t, model.Black, c1)
}

func TestHandsScaleToRing(t *testing.T) {
	hands := HandsAt(at(6, 30, 45, 500000000), 24, DefaultPalette())

	s := hands[Second]
	assert.Equal(t, 18, s.Pos)
	assert.Equal(t, 19, s.Next)
	assert.InDelta(t, 0.2, s.Blend, 1e-9)

	m := hands[Minute]
	assert.Equal(t, 12, m.Pos)
	assert.InDelta(t, (30+45.5/60)*24/60-12, m.Blend, 1e-9)

	h := hands[Hour]
	// (6*60+30)/12 = 32 face units plus 405/719 of a segment, times 24/60
	assert.Equal(t, 13, h.Pos)
	assert.Equal(t, 14, h.Next)
	assert.InDelta(t, (32+405.0/719)*24/60-13, h.Blend, 1e-9)
	assert.Less(t, h.Blend, 1.0)
	assert.GreaterOrEqual(t, h.Blend, 0.0)
}

func TestHandsStayOnRing(t *testing.T) {
	for _, n := range []int{1, 7, 24, 60, 144} {
		for _, tm := range []time.Time{at(0, 0, 0, 0), at(11, 59, 59, 999999999), at(23, 59, 59, 999999999), at(17, 3, 41, 123)} {
			for _, h := range HandsAt(tm, n, DefaultPalette()) {
				assert.True(t, h.Pos >= 0 && h.Pos < n, "%s pos %d on %d", h.Kind, h.Pos, n)
				assert.Equal(t, (h.Pos+1)%n, h.Next)
				assert.True(t, h.Blend >= 0 && h.Blend <= 1, "%s blend %v", h.Kind, h.Blend)
			}
		}
	}
}

func TestHandKindString(t *testing.T) {
	assert.Equal(t, "second", Second.String())
	assert.Equal(t, "minute", Minute.String())
	assert.Equal(t, "hour", Hour.String())
}
