package led

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

// Term previews the ring as a circle in the terminal. Logical position 0
// sits at 12 o'clock and positions advance clockwise, whatever the winding.
//
// The terminal runs in raw mode, so Ctrl-C arrives as a key event rather than
// a signal; Esc, q and Ctrl-C call onQuit.
type Term struct {
	Buffer
	ring   ring.Ring
	screen tcell.Screen
	onQuit func()

	quitOnce sync.Once
	done     chan struct{}
}

func NewTerm(r ring.Ring, onQuit func()) *Term {
	return NewTermScreen(nil, r, onQuit)
}

// NewTermScreen draws onto s instead of opening the controlling terminal.
func NewTermScreen(s tcell.Screen, r ring.Ring, onQuit func()) *Term {
	return &Term{
		Buffer: NewBuffer(r.Len()),
		ring:   r,
		screen: s,
		onQuit: onQuit,
	}
}

func (t *Term) Begin() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("term screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("term init: %w", err)
	}
	t.screen.Clear()
	t.done = make(chan struct{})
	go t.poll()
	return nil
}

func (t *Term) poll() {
	defer close(t.done)
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				t.quit()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Term) quit() {
	if t.onQuit == nil {
		return
	}
	t.quitOnce.Do(t.onQuit)
}

// Cell returns the terminal cell for a logical position on a w x h screen.
// Terminal cells are roughly twice as tall as wide, so x is stretched.
func Cell(logical, n, w, h int) (x, y int) {
	radius := math.Min(float64(w)/4, float64(h)/2) - 1
	if radius < 1 {
		radius = 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	theta := 2 * math.Pi * float64(logical) / float64(n)
	x = int(math.Round(cx + 2*radius*math.Sin(theta)))
	y = int(math.Round(cy - radius*math.Cos(theta)))
	return x, y
}

func (t *Term) Show() error {
	if t.done == nil {
		return fmt.Errorf("term strip not started")
	}
	w, h := t.screen.Size()
	t.screen.Clear()
	for i, px := range t.px {
		x, y := Cell(t.ring.Logical(i), len(t.px), w, h)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(px.R()), int32(px.G()), int32(px.B())))
		t.screen.SetContent(x, y, '●', nil, style)
	}
	t.screen.Show()
	return nil
}

func (t *Term) Close() error {
	if t.done == nil {
		return nil
	}
	t.screen.Fini()
	<-t.done
	t.done = nil
	return nil
}
