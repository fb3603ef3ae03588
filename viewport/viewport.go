// Package viewport owns the high-precision view state — center,
// scale, and iteration ceiling — and the operations that mutate it in
// response to user input: cursor-anchored zoom and iteration-ceiling
// doubling/halving. This is spec.md §4.8's Viewport Controller, ported
// from the SDL_MOUSEWHEEL and PAGEUP/PAGEDOWN handlers in
// original_source/src/main.c's event loop.
package viewport

import (
	"fmt"

	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/hp"
)

// View is the mutable HP view state shared by the engine's driver loop
// and the display adapter's input handling. All mutating methods are
// meant to be called from the single driver goroutine; View does no
// internal locking of its own; matching the teacher's convention of
// confining mutable simulation state to one goroutine (c.f.
// console.Bus.Run owning the NES CPU/PPU/bus state).
type View struct {
	CenterRe *hp.Float
	CenterIm *hp.Float
	Scale    *hp.Float
	MaxIter  int

	width, height int
	redraw        bool
}

// New builds a View at the given center/scale (decimal strings, as
// accepted by flag values) with the given framebuffer dimensions and
// initial iteration ceiling.
func New(centerRe, centerIm, scale string, width, height, maxIter int) (*View, error) {
	cre, ok := hp.New().SetString(centerRe)
	if !ok {
		return nil, fmt.Errorf("viewport: invalid center real part %q", centerRe)
	}
	cim, ok := hp.New().SetString(centerIm)
	if !ok {
		return nil, fmt.Errorf("viewport: invalid center imaginary part %q", centerIm)
	}
	s, ok := hp.New().SetString(scale)
	if !ok {
		return nil, fmt.Errorf("viewport: invalid scale %q", scale)
	}

	return &View{
		CenterRe: cre,
		CenterIm: cim,
		Scale:    s,
		MaxIter:  maxIter,
		width:    width,
		height:   height,
		redraw:   true, // the very first frame always needs a render
	}, nil
}

// ZoomAtCursor re-centers the view so that the world point currently
// under (cursorX, cursorY) stays fixed on screen while the scale is
// multiplied by factor (< 1 zooms in, > 1 zooms out). This follows
// original_source/src/main.c's SDL_MOUSEWHEEL handler exactly: the
// world point under the cursor is located at the old scale, then the
// center is re-derived so that same world point lands back under the
// cursor at the new scale.
func (v *View) ZoomAtCursor(cursorX, cursorY int, factor float64) {
	oldScale := hp.New().Set(v.Scale)
	newScale := hp.New().MulFloat64(v.Scale, factor)

	dx := float64(cursorX) - float64(v.width)/2.0
	dy := float64(cursorY) - float64(v.height)/2.0

	reBefore := hp.New()
	reBefore.MulFloat64(oldScale, dx)
	reBefore.Add(v.CenterRe, reBefore)

	imBefore := hp.New()
	imBefore.MulFloat64(oldScale, dy)
	imBefore.Add(v.CenterIm, imBefore)

	reShift := hp.New().MulFloat64(newScale, dx)
	imShift := hp.New().MulFloat64(newScale, dy)

	v.CenterRe.Sub(reBefore, reShift)
	v.CenterIm.Sub(imBefore, imShift)
	v.Scale = newScale

	v.redraw = true
}

// BumpIter doubles (delta > 0) or halves (delta < 0) the iteration
// ceiling, matching SDLK_PAGEUP/SDLK_PAGEDOWN. The ceiling never drops
// below config.MinMaxIter.
func (v *View) BumpIter(delta int) {
	if delta > 0 {
		v.MaxIter *= 2
	} else if delta < 0 {
		v.MaxIter /= 2
		if v.MaxIter < config.MinMaxIter {
			v.MaxIter = config.MinMaxIter
		}
	}
	v.redraw = true
}

// RequestRedraw marks the view dirty without changing center, scale,
// or iteration ceiling, matching the right-mouse-button "force redraw"
// handler in original_source/src/main.c.
func (v *View) RequestRedraw() {
	v.redraw = true
}

// TakeRedraw reports whether a redraw has been requested since the
// last call, clearing the flag as it does. The driver loop polls this
// once per Step to decide whether to kick off a new orbit computation.
func (v *View) TakeRedraw() bool {
	r := v.redraw
	v.redraw = false
	return r
}

// Dimensions returns the framebuffer dimensions this view was built
// for.
func (v *View) Dimensions() (int, int) {
	return v.width, v.height
}
