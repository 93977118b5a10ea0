package clock

import (
	"fmt"

	"github.com/coreman2200/funtimes-pixelclock/internal/model"
)

// FaceUnits is the number of positions on a clock face (seconds, minutes).
const FaceUnits = 60

// Palette holds the face colors. Hand colors are multiplied by their scale
// once, before the per-frame interpolation weights are applied.
type Palette struct {
	Background model.Color
	Tick       model.Color
	Quarter    model.Color

	Second      model.Color
	SecondScale float64
	Minute      model.Color
	MinuteScale float64
	Hour        model.Color
	HourScale   float64
}

// DefaultPalette dims the second hand to half brightness and marks every
// fifth position faintly, every fifteenth a little brighter.
func DefaultPalette() Palette {
	return Palette{
		Background:  model.Black,
		Tick:        model.RGB(5, 5, 5),
		Quarter:     model.RGB(20, 20, 20),
		Second:      model.Red,
		SecondScale: 0.5,
		Minute:      model.Green,
		MinuteScale: 1.0,
		Hour:        model.Blue,
		HourScale:   1.0,
	}
}

func (p Palette) Validate() error {
	for name, s := range map[string]float64{
		"second": p.SecondScale,
		"minute": p.MinuteScale,
		"hour":   p.HourScale,
	} {
		if !(s >= 0 && s <= 1) {
			return fmt.Errorf("%s scale %v outside [0,1]", name, s)
		}
	}
	return nil
}
