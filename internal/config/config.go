package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-pixelclock/internal/clock"
	"github.com/coreman2200/funtimes-pixelclock/internal/led"
	"github.com/coreman2200/funtimes-pixelclock/internal/model"
	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

var ErrInvalid = errors.New("invalid config")

type Ring struct {
	Pixels   int  `yaml:"pixels"`
	Offset   int  `yaml:"offset"`   // moves logical 0 to the connector
	Reversed bool `yaml:"reversed"` // strip wound against the face
}

type Strip struct {
	GPIO       int    `yaml:"gpio"`
	FreqHz     int    `yaml:"freq_hz"`
	DMA        int    `yaml:"dma"`
	Invert     bool   `yaml:"invert"`
	Brightness int    `yaml:"brightness"`
	Channel    int    `yaml:"channel"`
	ColorOrder string `yaml:"color_order"`
}

type SPI struct {
	Dev    string `yaml:"dev"`     // spireg name, "" for the first port
	FreqHz int    `yaml:"freq_hz"` // e.g. 2500000
}

type Colors struct {
	Background  model.Color `yaml:"background"`
	Tick        model.Color `yaml:"tick"`
	Quarter     model.Color `yaml:"quarter"`
	Second      model.Color `yaml:"second"`
	SecondScale float64     `yaml:"second_scale"`
	Minute      model.Color `yaml:"minute"`
	MinuteScale float64     `yaml:"minute_scale"`
	Hour        model.Color `yaml:"hour"`
	HourScale   float64     `yaml:"hour_scale"`
}

type Calib struct {
	HoldFrames int `yaml:"hold_frames"`
}

type Config struct {
	Driver      string `yaml:"driver"`   // nrz | ws281x | console | term | sim
	Fallback    bool   `yaml:"fallback"` // use the console if the driver fails to open
	FPS         int    `yaml:"fps"`
	ClearOnExit bool   `yaml:"clear_on_exit"`

	Ring   Ring   `yaml:"ring"`
	Strip  Strip  `yaml:"strip"`
	SPI    SPI    `yaml:"spi,omitempty"`
	Colors Colors `yaml:"colors"`
	Calib  Calib  `yaml:"calib"`
}

// Default matches a 60 pixel ring on GPIO 18 with the connector two
// positions before 12 o'clock.
func Default() *Config {
	p := clock.DefaultPalette()
	return &Config{
		Driver:   "ws281x",
		Fallback: true,
		FPS:      25,
		Ring:     Ring{Pixels: 60, Offset: -2, Reversed: true},
		Strip: Strip{
			GPIO:       18,
			FreqHz:     800000,
			DMA:        10,
			Invert:     false,
			Brightness: 255,
			Channel:    0,
			ColorOrder: "GRB",
		},
		SPI: SPI{FreqHz: 2500000},
		Colors: Colors{
			Background:  p.Background,
			Tick:        p.Tick,
			Quarter:     p.Quarter,
			Second:      p.Second,
			SecondScale: p.SecondScale,
			Minute:      p.Minute,
			MinuteScale: p.MinuteScale,
			Hour:        p.Hour,
			HourScale:   p.HourScale,
		},
		Calib: Calib{HoldFrames: 5},
	}
}

// Load reads path over the defaults, so a partial file only overrides the
// keys it sets.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

var colorOrders = map[string]bool{"RGB": true, "RBG": true, "GRB": true, "GBR": true, "BRG": true, "BGR": true}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate rejects settings the render loop cannot run with.
func (c *Config) Validate() error {
	if !knownDriver(c.Driver) {
		return invalid("driver %q, want one of %v", c.Driver, led.Drivers)
	}
	if c.Ring.Pixels <= 0 {
		return invalid("ring.pixels must be positive, got %d", c.Ring.Pixels)
	}
	if c.FPS <= 0 {
		return invalid("fps must be positive, got %d", c.FPS)
	}
	if c.Strip.Brightness < 0 || c.Strip.Brightness > 255 {
		return invalid("strip.brightness must be 0..255, got %d", c.Strip.Brightness)
	}
	if c.Strip.Channel != 0 && c.Strip.Channel != 1 {
		return invalid("strip.channel must be 0 or 1, got %d", c.Strip.Channel)
	}
	if !colorOrders[c.Strip.ColorOrder] {
		return invalid("strip.color_order %q", c.Strip.ColorOrder)
	}
	if c.Strip.FreqHz <= 0 {
		return invalid("strip.freq_hz must be positive, got %d", c.Strip.FreqHz)
	}
	if c.Calib.HoldFrames <= 0 {
		return invalid("calib.hold_frames must be positive, got %d", c.Calib.HoldFrames)
	}
	if err := c.Palette().Validate(); err != nil {
		return invalid("colors: %v", err)
	}
	return nil
}

func knownDriver(name string) bool {
	for _, d := range led.Drivers {
		if d == name {
			return true
		}
	}
	return false
}

func (c *Config) Palette() clock.Palette {
	return clock.Palette{
		Background:  c.Colors.Background,
		Tick:        c.Colors.Tick,
		Quarter:     c.Colors.Quarter,
		Second:      c.Colors.Second,
		SecondScale: c.Colors.SecondScale,
		Minute:      c.Colors.Minute,
		MinuteScale: c.Colors.MinuteScale,
		Hour:        c.Colors.Hour,
		HourScale:   c.Colors.HourScale,
	}
}

func (c *Config) BuildRing() (ring.Ring, error) {
	return ring.New(c.Ring.Pixels, c.Ring.Offset, c.Ring.Reversed)
}

// HWOptions flattens the strip settings for led.Open. The terminal preview
// also needs the ring and a quit hook, which the caller fills in.
func (c *Config) HWOptions() led.HWOptions {
	return led.HWOptions{
		Pixels:     c.Ring.Pixels,
		GPIO:       c.Strip.GPIO,
		FreqHz:     c.Strip.FreqHz,
		DMA:        c.Strip.DMA,
		Invert:     c.Strip.Invert,
		Brightness: c.Strip.Brightness,
		Channel:    c.Strip.Channel,
		ColorOrder: c.Strip.ColorOrder,
		SPIDev:     c.SPI.Dev,
		SPIFreqHz:  c.SPI.FreqHz,
	}
}
