// Package tile implements the multi-resolution tile scheduler: it
// walks the coarse-to-fine step schedule and, for each step, enumerates
// the framebuffer in row-major tiles, emitting one perturbation job per
// tile via a submit callback. This is spec.md §4.5's Tile Scheduler,
// kept as a small stateless function rather than its own goroutine or
// struct, matching the teacher's habit of driving work from the single
// driver loop instead of spawning a scheduling goroutine per pass.
package tile

import (
	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/orbit"
	"github.com/lmeyer/mandelperturb/perturb"
)

// Size returns the tile edge length for a given step, per spec.md
// §4.5: tiles never shrink below 8 pixels even for step 1, so a
// pool worker always has a reasonably sized chunk of independent work.
func Size(step int) int {
	if step > 8 {
		return step
	}
	return 8
}

// Submit is called once per tile with a fully populated job. The
// caller (engine) is expected to hand it to a worker pool; Schedule
// itself does no enqueuing and has no knowledge of the pool.
type Submit func(job perturb.Job)

// Schedule enumerates every step in config.StepSchedule, and for each
// step every tile covering a width x height framebuffer in row-major
// order, invoking submit with a job for that tile. o and generation are
// shared read-only across every emitted job: callers must not mutate o
// until the generation this schedule was built for is no longer live.
func Schedule(width, height, maxIter int, scaleD float64, o *orbit.Orbit, generation int64, submit Submit) {
	for _, step := range config.StepSchedule {
		size := Size(step)

		for originY := 0; originY < height; originY += size {
			for originX := 0; originX < width; originX += size {
				submit(perturb.Job{
					OriginX:    originX,
					OriginY:    originY,
					Tile:       size,
					Step:       step,
					Samples:    1,
					Orbit:      o,
					ScaleD:     scaleD,
					MaxIter:    maxIter,
					Generation: generation,
				})
			}
		}
	}
}
