package led

import (
	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

// Strip abstracts an addressable LED output. Writes are staged until Show.
type Strip interface {
	// Begin performs one-time hardware setup.
	Begin() error
	NumPixels() int
	SetPixelColor(index int, c model.Color)
	// GetPixelColor reads back the last staged value.
	GetPixelColor(index int) model.Color
	// Show commits every staged pixel to the display at once.
	Show() error
	// Close releases resources.
	Close() error
}

// Buffer is the staging area every driver keeps in front of its hardware.
type Buffer struct {
	px []model.Color
}

func NewBuffer(n int) Buffer {
	return Buffer{px: make([]model.Color, n)}
}

func (b *Buffer) NumPixels() int { return len(b.px) }

func (b *Buffer) SetPixelColor(index int, c model.Color) {
	if index < 0 || index >= len(b.px) {
		return
	}
	b.px[index] = c
}

func (b *Buffer) GetPixelColor(index int) model.Color {
	if index < 0 || index >= len(b.px) {
		return model.Black
	}
	return b.px[index]
}

// Pixels returns a copy of the staged buffer in physical order.
func (b *Buffer) Pixels() []model.Color {
	out := make([]model.Color, len(b.px))
	copy(out, b.px)
	return out
}

// Fill stages c on every pixel.
func (b *Buffer) Fill(c model.Color) {
	for i := range b.px {
		b.px[i] = c
	}
}

// rgb packs the buffer as R,G,B triplets into dst, which must be 3*N long.
func (b *Buffer) rgb(dst []byte) {
	for i, c := range b.px {
		dst[i*3+0] = c.R()
		dst[i*3+1] = c.G()
		dst[i*3+2] = c.B()
	}
}

// Clear turns every pixel off and commits the frame.
func Clear(s Strip) error {
	for i := 0; i < s.NumPixels(); i++ {
		s.SetPixelColor(i, model.Black)
	}
	return s.Show()
}
