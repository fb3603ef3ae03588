// Package perturb implements the perturbation renderer: deriving a
// pixel's escape iteration count and continuous coloring index from a
// shared high-precision reference orbit, with automatic glitch
// recovery via rebasing. This is the core numeric kernel described in
// spec.md §4.4, ported almost line-for-line from
// original_source/src/main.c's render_test, with one deliberate
// behavior change: the iteration cache is written once a pixel's
// final count is known (spec.md §9's resolved memoization question),
// so a later, finer pass that finds a pixel already resolved reuses
// its cached color and performs no iteration work.
//
// perturb never touches HP: every value here is a float64.
package perturb

import (
	"math"

	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/framebuffer"
	"github.com/lmeyer/mandelperturb/orbit"
	"github.com/lmeyer/mandelperturb/palette"
)

// Job describes one tile of work for one multi-resolution pass, per
// spec.md §3's pixel job descriptor.
type Job struct {
	OriginX, OriginY int
	Tile             int
	Step             int
	// Samples is retained for a future supersampling knob but is
	// always 1; this renderer never averages multiple samples per
	// pixel (Non-goal).
	Samples    int
	Orbit      *orbit.Orbit
	ScaleD     float64
	MaxIter    int
	Generation int64
}

// isLive reports whether generation is still the active render
// generation; it is checked at the top of the outer pixel loop and
// before each expensive write, per spec.md §4.4's cancellation
// contract.
type isLive func(generation int64) bool

// Run rasterizes job into fb using pal for coloring. width/height are
// the framebuffer dimensions, used to locate each pixel's offset from
// the viewport center. Run returns immediately, without touching fb,
// if job.Generation is already stale when it starts.
func Run(job Job, fb *framebuffer.FB, pal *palette.Palette, width, height int, live isLive) {
	if !live(job.Generation) {
		return
	}

	escapeRadiusSq := config.EscapeRadius * config.EscapeRadius

	for dy := 0; dy < job.Tile; dy += job.Step {
		y := job.OriginY + dy
		if y >= height {
			break
		}

		for dx := 0; dx < job.Tile; dx += job.Step {
			if !live(job.Generation) {
				return
			}

			x := job.OriginX + dx
			if x >= width {
				break
			}

			color, painted := pixelColor(job, x, y, width, height, escapeRadiusSq, fb, pal)
			if !painted {
				continue
			}

			if !live(job.Generation) {
				return
			}
			fb.PaintBlock(x, y, job.Step, color)
		}
	}
}

// pixelColor computes (or reuses the memoized) color for pixel (x,y).
// painted is false only in the pathological case where the orbit has
// zero samples; callers should treat that as "nothing to paint".
func pixelColor(job Job, x, y, width, height int, escapeRadiusSq float64, fb *framebuffer.FB, pal *palette.Palette) (uint32, bool) {
	if job.Orbit.Length == 0 {
		return 0, false
	}

	if cached := fb.Iteration(x, y); cached != framebuffer.Unresolved {
		return fb.Color(x, y), true
	}

	iter, zMagSq := iterate(job, x, y, width, height, escapeRadiusSq)

	var color uint32
	if iter >= job.MaxIter {
		color = 0xFF000000
	} else {
		color = colorFor(pal, iter, zMagSq)
	}

	fb.Resolve(x, y, int32(iter), color)
	return color, true
}

// iterate runs the perturbation recurrence for one pixel and returns
// its final iteration count and the squared modulus of z at the
// moment escape was detected (meaningless if iter == job.MaxIter).
func iterate(job Job, x, y, width, height int, escapeRadiusSq float64) (iter int, zMagSq float64) {
	o := job.Orbit
	scale := job.ScaleD

	deltaCRe := (float64(x) - float64(width)/2.0) * scale
	deltaCIm := (float64(y) - float64(height)/2.0) * scale

	deltaZRe, deltaZIm := 0.0, 0.0
	orbitIdx := 0

	for iter = 0; iter < job.MaxIter; {
		refRe := o.Re[orbitIdx]
		refIm := o.Im[orbitIdx]

		tRe := 2.0 * (refRe*deltaZRe - refIm*deltaZIm)
		tIm := 2.0 * (refRe*deltaZIm + refIm*deltaZRe)

		dzRe := deltaZRe*deltaZRe - deltaZIm*deltaZIm
		dzIm := 2.0 * deltaZRe * deltaZIm

		deltaZRe = tRe + dzRe + deltaCRe
		deltaZIm = tIm + dzIm + deltaCIm

		if orbitIdx+1 > o.Length-1 {
			// Reference exhausted: clamp the index, keep
			// updating delta and counting iterations,
			// reusing the last valid sample.
			iter++
			continue
		}
		orbitIdx++

		zRe := o.Re[orbitIdx] + deltaZRe
		zIm := o.Im[orbitIdx] + deltaZIm
		zMagSq = zRe*zRe + zIm*zIm

		if zMagSq > escapeRadiusSq {
			break
		}

		deltaMagSq := deltaZRe*deltaZRe + deltaZIm*deltaZIm
		if deltaMagSq > zMagSq {
			// Glitch: the perturbation has grown comparable
			// to or larger than the base point. Rebase by
			// treating the current z as a fresh local orbit
			// sample and restart the orbit index.
			deltaZRe = zRe
			deltaZIm = zIm
			orbitIdx = 0
		}

		iter++
	}

	return iter, zMagSq
}

// colorFor derives a palette color from a final iteration count and
// the squared modulus of z at escape, via the continuous
// (smooth) escape-time coloring index.
func colorFor(pal *palette.Palette, iter int, zMagSq float64) uint32 {
	nu := float64(iter) + 1 - math.Log2(math.Log2(math.Sqrt(zMagSq)))
	t := nu * pal.Freq
	return pal.At(t)
}
