package led

import (
	"fmt"

	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

// HWOptions carries the one-time strip setup parameters.
type HWOptions struct {
	Pixels     int
	GPIO       int
	FreqHz     int
	DMA        int
	Invert     bool
	Brightness int
	Channel    int
	ColorOrder string

	SPIDev    string
	SPIFreqHz int

	// Ring and OnQuit are used by the terminal preview.
	Ring   ring.Ring
	OnQuit func()
}

const (
	DriverSim     = "sim"
	DriverNRZ     = "nrz"
	DriverConsole = "console"
	DriverWS281x  = "ws281x"
	DriverTerm    = "term"
)

// Drivers lists the names Open accepts.
var Drivers = []string{DriverNRZ, DriverWS281x, DriverConsole, DriverTerm, DriverSim}

// Open builds the named driver and calls Begin on it.
func Open(name string, o HWOptions) (Strip, error) {
	var s Strip
	switch name {
	case DriverSim:
		s = NewSim(o.Pixels)
	case DriverNRZ:
		s = NewNRZ(o.SPIDev, o.Pixels, physic.Frequency(o.SPIFreqHz)*physic.Hertz, o.ColorOrder)
	case DriverConsole:
		s = NewConsole(o.Pixels)
	case DriverWS281x:
		w, err := NewWS281x(o)
		if err != nil {
			return nil, err
		}
		s = w
	case DriverTerm:
		s = NewTerm(o.Ring, o.OnQuit)
	default:
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	if err := s.Begin(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
