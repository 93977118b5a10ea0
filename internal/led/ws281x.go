//go:build linux && ws281x

package led

import (
	"fmt"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"
	"github.com/rs/zerolog/log"
)

// WS281x drives the strip through the rpi_ws281x PWM/DMA library.
type WS281x struct {
	Buffer
	opts    HWOptions
	dev     *ws2811.WS2811
	channel int
}

func NewWS281x(o HWOptions) (*WS281x, error) {
	if o.Pixels <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", o.Pixels)
	}
	return &WS281x{Buffer: NewBuffer(o.Pixels), opts: o, channel: o.Channel}, nil
}

func stripType(order string) int {
	switch order {
	case "RGB":
		return ws2811.WS2811StripRGB
	case "RBG":
		return ws2811.WS2811StripRBG
	case "GBR":
		return ws2811.WS2811StripGBR
	case "BRG":
		return ws2811.WS2811StripBRG
	case "BGR":
		return ws2811.WS2811StripBGR
	case "GRB":
		fallthrough
	default:
		return ws2811.WS2811StripGRB
	}
}

func (w *WS281x) Begin() error {
	opt := ws2811.DefaultOptions
	opt.Frequency = w.opts.FreqHz
	opt.DmaNum = w.opts.DMA

	ch := opt.Channels[0]
	ch.GpioPin = w.opts.GPIO
	ch.LedCount = w.opts.Pixels
	ch.Brightness = w.opts.Brightness
	ch.Invert = w.opts.Invert
	ch.StripeType = stripType(w.opts.ColorOrder)

	// channels other than the selected one stay unused (gpio 0)
	channels := make([]ws2811.ChannelOption, w.channel+1)
	channels[w.channel] = ch
	opt.Channels = channels

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return fmt.Errorf("ws2811 make: %w", err)
	}
	if err := dev.Init(); err != nil {
		return fmt.Errorf("ws2811 init: %w", err)
	}
	w.dev = dev
	log.Info().Int("gpio", w.opts.GPIO).Int("pixels", w.opts.Pixels).Int("dma", w.opts.DMA).
		Int("channel", w.channel).Str("order", w.opts.ColorOrder).Msg("ws281x strip ready")
	return nil
}

func (w *WS281x) Show() error {
	if w.dev == nil {
		return fmt.Errorf("ws281x strip not started")
	}
	leds := w.dev.Leds(w.channel)
	for i := 0; i < len(leds) && i < len(w.px); i++ {
		leds[i] = uint32(w.px[i])
	}
	if err := w.dev.Render(); err != nil {
		return fmt.Errorf("ws2811 render: %w", err)
	}
	return nil
}

func (w *WS281x) Close() error {
	if w.dev != nil {
		w.dev.Fini()
		w.dev = nil
	}
	return nil
}
