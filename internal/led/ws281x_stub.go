//go:build !(linux && ws281x)

package led

import "fmt"

type WS281x struct{ Buffer }

func NewWS281x(o HWOptions) (*WS281x, error) {
	return nil, fmt.Errorf("ws281x driver not compiled in (build with -tags ws281x on linux)")
}

func (w *WS281x) Begin() error { return fmt.Errorf("ws281x driver not supported on this platform") }
func (w *WS281x) Show() error  { return nil }
func (w *WS281x) Close() error { return nil }
