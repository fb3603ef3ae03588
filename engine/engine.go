// Package engine implements the driver loop: the single-threaded
// orchestrator that sequences the reference-orbit computation, the
// tile scheduler, and the framebuffer, and folds in the generation
// controller as a plain atomic counter field. This is spec.md §4.7's
// Generation controller and §4.9's Driver loop, modeled directly on
// original_source/src/main.c's main loop body (the `if (redraw)` /
// `if (g_orbit_ready)` / `if (!done && ...)` sequence), and on
// console.Bus's Update/Draw/Layout shape for how the teacher structures
// a per-frame orchestrator.
package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/framebuffer"
	"github.com/lmeyer/mandelperturb/hp"
	"github.com/lmeyer/mandelperturb/input"
	"github.com/lmeyer/mandelperturb/orbit"
	"github.com/lmeyer/mandelperturb/palette"
	"github.com/lmeyer/mandelperturb/perturb"
	"github.com/lmeyer/mandelperturb/tile"
	"github.com/lmeyer/mandelperturb/viewport"
	"github.com/lmeyer/mandelperturb/workpool"
)

// Engine owns every piece of shared render state for one session: the
// viewport, the worker pool, the framebuffer, the active palette, and
// the generation counter. Step must only ever be called from one
// goroutine; the pool workers it enqueues onto reach back into Engine
// only through the data each closure already owns (isLive, a borrowed
// orbit, the shared framebuffer) plus Engine's own atomics/mutex.
type Engine struct {
	View *viewport.View

	pool *workpool.Pool
	fb   *framebuffer.FB
	pal  *palette.Palette

	width, height int

	generation atomic.Int64

	orbitMu sync.Mutex
	orbit   *orbit.Orbit

	orbitReady     atomic.Bool
	computingOrbit bool
	done           bool
	renderStart    time.Time

	infoVisible   bool
	quitRequested bool
}

// New builds an Engine from a resolved startup configuration and the
// palette it should render with, constructing the viewport, worker
// pool, and framebuffer per the configured dimensions.
func New(cfg config.Config, pal *palette.Palette) (*Engine, error) {
	view, err := viewport.New(cfg.CenterRe, cfg.CenterIm, cfg.Scale, cfg.Width, cfg.Height, cfg.MaxIter)
	if err != nil {
		return nil, err
	}

	return &Engine{
		View:   view,
		pool:   workpool.New(cfg.Workers, cfg.QueueCapacity),
		fb:     framebuffer.New(cfg.Width, cfg.Height),
		pal:    pal,
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// isLive reports whether gen is still the active render generation; it
// is the liveness callback handed down to perturb.Run, whose Job
// already carries the generation it was issued under.
func (e *Engine) isLive(gen int64) bool {
	return e.generation.Load() == gen
}

// currentGeneration reports the live generation with no argument; it
// is the liveness callback handed down to orbit.Compute, which checks
// it against the generation it was started under on every iteration.
func (e *Engine) currentGeneration() int64 {
	return e.generation.Load()
}

// Step processes one frame's worth of input and runs one pass of the
// driver loop: spec.md §4.9's steps 1 to 4 (the display adapter pulls
// the framebuffer itself through Snapshot). It never blocks: orbit
// computation and perturbation rendering both run on pool workers.
func (e *Engine) Step(inputs []input.Event) {
	e.routeInputs(inputs)

	if e.View.TakeRedraw() {
		e.startOrbit()
	}

	if e.orbitReady.CompareAndSwap(true, false) {
		e.startTiles()
	}

	if !e.done && !e.computingOrbit && e.pool.ActiveCount() == 0 {
		e.done = true
		log.Printf("render done in %s at scale %.3e", time.Since(e.renderStart), e.View.Scale.Float64())
	}
}

// routeInputs is spec.md §4.9 step 1: drain input events and route
// them to the viewport or to Engine's own flags.
func (e *Engine) routeInputs(inputs []input.Event) {
	for _, ev := range inputs {
		switch ev.Kind {
		case input.Zoom:
			factor := config.ZoomInFactor
			if ev.Delta < 0 {
				factor = config.ZoomOutFactor
			}
			e.View.ZoomAtCursor(ev.CursorX, ev.CursorY, factor)
		case input.IterBump:
			if ev.Delta < 0 {
				e.View.BumpIter(-1)
			} else {
				e.View.BumpIter(1)
			}
		case input.ToggleInfo:
			e.infoVisible = !e.infoVisible
		case input.Redraw:
			e.View.RequestRedraw()
		case input.Quit:
			e.quitRequested = true
		}
	}
}

// startOrbit is spec.md §4.9 step 2: bump the generation, clear the
// pool of any still-queued obsolete work, and enqueue one orbit
// computation task carrying its own private snapshot of the center (so
// a later viewport mutation never races with an in-flight computation).
func (e *Engine) startOrbit() {
	e.generation.Add(1)
	e.pool.Clear()
	e.done = false
	e.computingOrbit = true
	e.renderStart = time.Now()

	gen := e.generation.Load()
	maxIter := e.View.MaxIter
	log.Printf("generation %d: computing orbit (max_iter=%d)", gen, maxIter)

	centerRe := hp.New().Set(e.View.CenterRe)
	centerIm := hp.New().Set(e.View.CenterIm)
	fresh := orbit.New(maxIter)

	e.pool.Enqueue(func() {
		if !orbit.Compute(centerRe, centerIm, maxIter, gen, e.currentGeneration, fresh) {
			return
		}
		e.orbitMu.Lock()
		e.orbit = fresh
		e.orbitMu.Unlock()
		e.orbitReady.Store(true)
	})
}

// startTiles is spec.md §4.9 step 3: reset the framebuffer and
// iteration cache for the new generation, bump the generation again
// (invalidating anything enqueued against the orbit-computation
// generation), and enqueue one perturbation task per tile in
// coarse-to-fine order.
func (e *Engine) startTiles() {
	e.fb.Reset()
	e.generation.Add(1)
	e.pool.Clear()
	e.computingOrbit = false

	gen := e.generation.Load()

	e.orbitMu.Lock()
	o := e.orbit
	e.orbitMu.Unlock()

	scaleD := e.View.Scale.Float64()
	maxIter := e.View.MaxIter
	width, height := e.width, e.height
	fb, pal, live := e.fb, e.pal, e.isLive

	tile.Schedule(width, height, maxIter, scaleD, o, gen, func(job perturb.Job) {
		e.pool.Enqueue(func() {
			perturb.Run(job, fb, pal, width, height, live)
		})
	})
}

// Snapshot returns a read-only copy of the current framebuffer
// contents for the display adapter's Draw, per spec.md §6.
func (e *Engine) Snapshot() (pixels []byte, width, height int) {
	pixels, width, height, _ = e.fb.Snapshot()
	return pixels, width, height
}

// InfoVisible reports whether the HUD overlay toggle is currently on.
func (e *Engine) InfoVisible() bool {
	return e.infoVisible
}

// QuitRequested reports whether a Quit input event has been received.
func (e *Engine) QuitRequested() bool {
	return e.quitRequested
}

// Done reports whether the current generation's render has fully
// drained the worker pool, matching the reference implementation's
// end-of-render timing line.
func (e *Engine) Done() bool {
	return e.done
}

// Close shuts down the engine's worker pool. Callers should stop
// calling Step before calling Close.
func (e *Engine) Close() {
	e.pool.Close()
}
