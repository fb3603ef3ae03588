// Package config holds the compile-time constants and flag-overridable
// startup configuration for mandelperturb, following the teacher's
// flag-parsed main-package idiom (see cmd/mandelgo).
package config

// Compile-time constants, matching spec.md §6.
const (
	// DefaultWidth and DefaultHeight are the default framebuffer
	// dimensions.
	DefaultWidth  = 800
	DefaultHeight = 600

	// PrecisionBits is the HP mantissa precision. It is a
	// compile-time constant: this renderer never adapts precision
	// at runtime.
	PrecisionBits = 1024

	// EscapeRadius is R in spec.md's glossary: a point is
	// considered escaped once |z| > EscapeRadius.
	EscapeRadius = 1e6

	// DefaultMaxIter is the initial iteration ceiling.
	DefaultMaxIter = 64

	// MinMaxIter is the floor max_iter never drops below.
	MinMaxIter = 64

	// DefaultWorkers is the worker pool size.
	DefaultWorkers = 12

	// DefaultQueueCapacity is the worker pool's FIFO capacity.
	DefaultQueueCapacity = 262144

	// DefaultCenterRe, DefaultCenterIm and DefaultScale describe
	// the default view: the main cardioid and period-2 bulb.
	DefaultCenterRe = "-0.75"
	DefaultCenterIm = "0"
	DefaultScale    = "0.005"

	// ZoomInFactor and ZoomOutFactor are the scale multipliers
	// applied by a single zoom-in/zoom-out input event.
	ZoomInFactor  = 0.75
	ZoomOutFactor = 1.25
)

// StepSchedule is the coarse-to-fine multi-resolution step sequence
// the tile scheduler emits passes for.
var StepSchedule = []int{16, 4, 1}

// Config is the fully resolved startup configuration, built from
// flag.Parse() in cmd/mandelgo and passed down to the engine.
type Config struct {
	Width, Height int
	Workers       int
	QueueCapacity int
	MaxIter       int
	CenterRe      string
	CenterIm      string
	Scale         string
	PaletteFile   string
}

// Default returns the configuration matching spec.md's default view
// (end-to-end scenario 1).
func Default() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Workers:       DefaultWorkers,
		QueueCapacity: DefaultQueueCapacity,
		MaxIter:       DefaultMaxIter,
		CenterRe:      DefaultCenterRe,
		CenterIm:      DefaultCenterIm,
		Scale:         DefaultScale,
	}
}
