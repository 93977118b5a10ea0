package led

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"
)

// Console renders the strip as a row of ANSI colored cells on stdout. It is
// the fallback when no SPI port is available.
type Console struct {
	Buffer
	drawer display.Drawer
	img    *image.NRGBA
}

func NewConsole(n int) *Console {
	return NewConsoleDrawer(nil, n)
}

// NewConsoleDrawer draws through d instead of the terminal screen device.
func NewConsoleDrawer(d display.Drawer, n int) *Console {
	return &Console{
		Buffer: NewBuffer(n),
		drawer: d,
		img:    image.NewNRGBA(image.Rect(0, 0, n, 1)),
	}
}

func (c *Console) Begin() error {
	if c.drawer == nil {
		c.drawer = screen.New(c.NumPixels())
	}
	return nil
}

// Image returns the staged frame as a 1xN image in physical order.
func (c *Console) Image() *image.NRGBA {
	for x, px := range c.px {
		c.img.SetNRGBA(x, 0, px.NRGBA())
	}
	return c.img
}

func (c *Console) Show() error {
	if c.drawer == nil {
		return fmt.Errorf("console strip not started")
	}
	if err := c.drawer.Draw(c.drawer.Bounds(), c.Image(), image.Point{}); err != nil {
		return fmt.Errorf("console draw: %w", err)
	}
	return nil
}

func (c *Console) Close() error {
	if c.drawer == nil {
		return nil
	}
	fmt.Printf("\n")
	c.drawer = nil
	return nil
}
