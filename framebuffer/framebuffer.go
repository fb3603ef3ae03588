// Package framebuffer implements the pixel-color array and the
// parallel per-pixel iteration/color memoization store shared by all
// perturbation-renderer tasks within one generation.
//
// It is the Go analogue of the reference implementation's
// pixels/pixels_mutex and pixels_done/pixels_done_mutex globals,
// ported to an explicit owned value per spec.md §9's "global mutable
// state" design note, with a byte-buffer-plus-mutex shape matching
// the ebiten-backed video outputs elsewhere in the retrieved pack.
package framebuffer

import "sync"

// Unresolved marks an iteration-cache slot that has not yet been
// computed for the current generation.
const Unresolved = -1

// FB owns the dense width*height color buffer, the parallel iteration
// cache, and a color cache that lets a later, finer pass reuse a
// coarser pass's already-resolved color without re-iterating.
type FB struct {
	width, height int

	pixelsMu sync.Mutex
	pixels   []byte // ARGB8888, width*height*4 bytes

	doneMu     sync.Mutex
	iterations []int32
	colors     []uint32
}

// New allocates a framebuffer of the given dimensions, reset to all
// black with an empty iteration cache.
func New(width, height int) *FB {
	fb := &FB{
		width:      width,
		height:     height,
		pixels:     make([]byte, width*height*4),
		iterations: make([]int32, width*height),
		colors:     make([]uint32, width*height),
	}
	fb.Reset()
	return fb
}

// Dimensions returns the framebuffer's width and height.
func (fb *FB) Dimensions() (int, int) {
	return fb.width, fb.height
}

// Reset clears the color buffer to black and the iteration cache to
// Unresolved. Called once per new generation, before any PR task for
// that generation is enqueued.
func (fb *FB) Reset() {
	fb.pixelsMu.Lock()
	for i := range fb.pixels {
		fb.pixels[i] = 0
	}
	fb.pixelsMu.Unlock()

	fb.doneMu.Lock()
	for i := range fb.iterations {
		fb.iterations[i] = Unresolved
	}
	for i := range fb.colors {
		fb.colors[i] = 0
	}
	fb.doneMu.Unlock()
}

// Iteration returns the memoized final iteration count for (x, y), or
// Unresolved if no pass has resolved it yet in the current generation.
func (fb *FB) Iteration(x, y int) int32 {
	fb.doneMu.Lock()
	defer fb.doneMu.Unlock()
	return fb.iterations[y*fb.width+x]
}

// Resolve stores the final iteration count and derived color for
// (x, y), making them visible to any later pass that consults
// Iteration/Color for the same pixel.
func (fb *FB) Resolve(x, y int, iter int32, color uint32) {
	fb.doneMu.Lock()
	fb.iterations[y*fb.width+x] = iter
	fb.colors[y*fb.width+x] = color
	fb.doneMu.Unlock()
}

// Color returns the memoized color for an already-Resolve'd pixel.
func (fb *FB) Color(x, y int) uint32 {
	fb.doneMu.Lock()
	defer fb.doneMu.Unlock()
	return fb.colors[y*fb.width+x]
}

// PaintBlock fills the step*step block anchored at (x, y) with color,
// clipped at the framebuffer bounds, under the pixel-buffer mutex.
func (fb *FB) PaintBlock(x, y, step int, color uint32) {
	fb.pixelsMu.Lock()
	defer fb.pixelsMu.Unlock()

	maxY := y + step
	if maxY > fb.height {
		maxY = fb.height
	}
	maxX := x + step
	if maxX > fb.width {
		maxX = fb.width
	}

	r := byte(color >> 16)
	g := byte(color >> 8)
	b := byte(color)
	a := byte(color >> 24)

	for py := y; py < maxY; py++ {
		row := py * fb.width * 4
		for px := x; px < maxX; px++ {
			i := row + px*4
			fb.pixels[i] = b
			fb.pixels[i+1] = g
			fb.pixels[i+2] = r
			fb.pixels[i+3] = a
		}
	}
}

// Snapshot returns a read-only copy of the current pixel buffer along
// with the framebuffer's dimensions and row pitch, matching the
// display collaborator's accessor in spec.md §6. The copy is taken
// under the pixel mutex so it never observes a torn write; tearing
// across frames is accepted, per spec.md §5, since the next frame
// supersedes it.
func (fb *FB) Snapshot() (pixels []byte, width, height, pitch int) {
	fb.pixelsMu.Lock()
	defer fb.pixelsMu.Unlock()

	out := make([]byte, len(fb.pixels))
	copy(out, fb.pixels)
	return out, fb.width, fb.height, fb.width * 4
}
