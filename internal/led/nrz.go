package led

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// DefaultSPIFreq gives 3 SPI bits per NRZ bit at the 800kHz WS2812 rate.
const DefaultSPIFreq = ((800 * 3) + 100) * physic.KiloHertz

// NRZ drives WS2812 style strips by NRZ encoding over a SPI port.
type NRZ struct {
	Buffer
	devName string
	freq    physic.Frequency
	// colorOrd is the channel order the strip expects on the wire.
	colorOrd [3]byte

	port spi.Port
	pc   spi.PortCloser
	dev  *nrzled.Dev
	raw  []byte
}

// NewNRZ opens the named spireg port on Begin. An empty name picks the first
// port registered on the host. order is a permutation of "RGB"; anything else
// means GRB.
func NewNRZ(devName string, n int, freq physic.Frequency, order string) *NRZ {
	if freq <= 0 {
		freq = DefaultSPIFreq
	}
	d := &NRZ{
		Buffer:   NewBuffer(n),
		devName:  devName,
		freq:     freq,
		colorOrd: [3]byte{'G', 'R', 'B'},
		raw:      make([]byte, n*3),
	}
	if len(order) == 3 {
		d.colorOrd = [3]byte{order[0], order[1], order[2]}
	}
	return d
}

// NewNRZPort uses an already opened port; Close will not close it.
func NewNRZPort(p spi.Port, n int, freq physic.Frequency, order string) *NRZ {
	d := NewNRZ("", n, freq, order)
	d.port = p
	return d
}

func (d *NRZ) Begin() error {
	if d.port == nil {
		if _, err := host.Init(); err != nil {
			return fmt.Errorf("host init: %w", err)
		}
		pc, err := spireg.Open(d.devName)
		if err != nil {
			return fmt.Errorf("open spi %q: %w", d.devName, err)
		}
		d.pc = pc
		d.port = pc
	}

	opts := nrzled.Opts{
		NumPixels: d.NumPixels(),
		Channels:  3,
		Freq:      d.freq,
	}
	dev, err := nrzled.NewSPI(d.port, &opts)
	if err != nil {
		d.closePort()
		return fmt.Errorf("nrzled: %w", err)
	}
	d.dev = dev
	log.Info().Str("dev", dev.String()).Int("pixels", opts.NumPixels).Str("freq", d.freq.String()).
		Str("order", string(d.colorOrd[:])).Msg("nrz strip ready")
	return nil
}

func (d *NRZ) Show() error {
	if d.dev == nil {
		return fmt.Errorf("nrz strip not started")
	}
	d.rgb(d.raw)
	d.reorder(d.raw)
	if _, err := d.dev.Write(d.raw); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

// reorder permutes R,G,B triplets in place so that, after nrzled sends its
// input as G,R,B, the wire carries colorOrd.
func (d *NRZ) reorder(raw []byte) {
	for i := 0; i+2 < len(raw); i += 3 {
		r, g, b := raw[i], raw[i+1], raw[i+2]
		var v [3]byte
		for k := 0; k < 3; k++ {
			switch d.colorOrd[k] {
			case 'R':
				v[k] = r
			case 'G':
				v[k] = g
			case 'B':
				v[k] = b
			}
		}
		raw[i], raw[i+1], raw[i+2] = v[1], v[0], v[2]
	}
}

// Close leaves the strip showing its last frame; nrzled's Halt would blank it.
func (d *NRZ) Close() error {
	d.dev = nil
	return d.closePort()
}

func (d *NRZ) closePort() error {
	if d.pc == nil {
		return nil
	}
	err := d.pc.Close()
	d.pc = nil
	d.port = nil
	return err
}
