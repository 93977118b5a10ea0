// Package calib lights test patterns through the ring addressing so an
// installation's offset and winding can be checked by eye.
package calib

import (
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-pixelclock/internal/led"
	"github.com/coreman2200/funtimes-pixelclock/internal/loop"
	"github.com/coreman2200/funtimes-pixelclock/internal/model"
	"github.com/coreman2200/funtimes-pixelclock/internal/ring"
)

type Kind string

const (
	None       Kind = ""
	IndexSweep Kind = "index_sweep"
	RGBTest    Kind = "rgb_channels"
	Quarters   Kind = "quarters"
)

var Kinds = []Kind{IndexSweep, RGBTest, Quarters}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown test pattern %q", s)
}

type Plan struct {
	Kind Kind
	// Hold is how many frames each step stays lit.
	Hold int
}

// Runner implements loop.Renderer. It returns loop.ErrDone once the plan has
// been shown in full.
type Runner struct {
	plan  Plan
	ring  ring.Ring
	strip led.Strip
	frame int
}

func NewRunner(plan Plan, r ring.Ring, s led.Strip) *Runner {
	if plan.Hold <= 0 {
		plan.Hold = 1
	}
	return &Runner{plan: plan, ring: r, strip: s}
}

func (r *Runner) Kind() Kind { return r.plan.Kind }

// Steps is the number of distinct patterns the plan shows.
func (r *Runner) Steps() int {
	switch r.plan.Kind {
	case IndexSweep:
		return r.ring.Len()
	case RGBTest:
		return 3
	case Quarters:
		return 1
	}
	return 0
}

// Step stages the pattern for step i; false when i is past the end.
func (r *Runner) Step(i int) bool {
	if i >= r.Steps() {
		return false
	}
	n := r.ring.Len()
	for p := 0; p < n; p++ {
		r.ring.Set(r.strip, p, model.Black)
	}

	switch r.plan.Kind {
	case IndexSweep:
		// logical 0 stays red so the start of the face is obvious
		r.ring.Set(r.strip, 0, model.Red)
		if i > 0 {
			r.ring.Set(r.strip, i, model.White)
		}
	case RGBTest:
		c := [3]model.Color{model.Red, model.Lime, model.Blue}[i]
		for p := 0; p < n; p++ {
			r.ring.Set(r.strip, p, c)
		}
	case Quarters:
		for k := 0; k < 4; k++ {
			r.ring.Set(r.strip, k*n/4, model.White)
		}
		r.ring.Set(r.strip, 0, model.Red)
	}
	return true
}

func (r *Runner) RenderFrame(time.Time) error {
	if !r.Step(r.frame / r.plan.Hold) {
		return loop.ErrDone
	}
	r.frame++
	return r.strip.Show()
}

func (r *Runner) Clear() error {
	return led.Clear(r.strip)
}
