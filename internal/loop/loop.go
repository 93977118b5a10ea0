// Package loop drives a renderer at a fixed frame rate until cancelled.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const DFLT_FPS = 25

// ErrDone may be returned by a Renderer to end the loop without an error.
var ErrDone = errors.New("loop: done")

// Renderer draws and commits one frame for wall-clock time t.
type Renderer interface {
	RenderFrame(t time.Time) error
	Clear() error
}

type State int32

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Stats describes the most recent frames.
type Stats struct {
	Frames     uint64
	Overruns   uint64
	LastRender time.Duration
	LastSleep  time.Duration
}

// Looper renders one frame per budget. A frame that runs long is followed
// immediately by the next; nothing is skipped or caught up, since every frame
// is drawn from the current time.
type Looper struct {
	renderer Renderer
	budget   time.Duration
	clear    bool

	// now is swapped out in tests.
	now func() time.Time

	state atomic.Int32
	mu    sync.Mutex
	stats Stats
}

// NewLooper returns a Looper targeting fps frames per second. With
// clearOnExit the strip is blanked when the loop stops.
func NewLooper(r Renderer, fps int, clearOnExit bool) *Looper {
	if fps <= 0 {
		fps = DFLT_FPS
	}
	return &Looper{
		renderer: r,
		budget:   time.Second / time.Duration(fps),
		clear:    clearOnExit,
		now:      time.Now,
	}
}

func (l *Looper) Budget() time.Duration { return l.budget }

func (l *Looper) State() State { return State(l.state.Load()) }

func (l *Looper) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Run renders until ctx is cancelled or the renderer returns ErrDone, then
// enters Stopped. Cancellation is only observed between frames, so a frame
// is never left half written. Render errors end the loop and are returned.
func (l *Looper) Run(ctx context.Context) error {
	l.state.Store(int32(Running))
	log.Info().Dur("budget", l.budget).Bool("clear_on_exit", l.clear).Msg("render loop starting")

	err := l.refresh(ctx)

	l.state.Store(int32(Stopped))
	st := l.Stats()
	log.Info().Uint64("frames", st.Frames).Uint64("overruns", st.Overruns).Msg("render loop stopped")

	if errors.Is(err, ErrDone) {
		err = nil
	}
	if err != nil {
		return err
	}
	if l.clear {
		if cerr := l.renderer.Clear(); cerr != nil {
			return fmt.Errorf("clear: %w", cerr)
		}
	}
	return nil
}

func (l *Looper) refresh(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		t := l.now()
		if err := l.renderer.RenderFrame(t); err != nil {
			return err
		}
		elapsed := l.now().Sub(t)

		delta := l.budget - elapsed
		l.record(elapsed, delta)
		if delta <= 0 {
			log.Debug().Dur("elapsed", elapsed).Dur("budget", l.budget).Msg("frame over budget")
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delta):
		}
	}
}

func (l *Looper) record(elapsed, delta time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Frames++
	l.stats.LastRender = elapsed
	if delta <= 0 {
		l.stats.Overruns++
		l.stats.LastSleep = 0
		return
	}
	l.stats.LastSleep = delta
}
