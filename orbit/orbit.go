// Package orbit computes the high-precision reference orbit that the
// perturbation renderer iterates pixels relative to.
//
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Perturbation_theory
package orbit

import (
	"github.com/lmeyer/mandelperturb/config"
	"github.com/lmeyer/mandelperturb/hp"
)

// Orbit holds the truncated sequence of double-precision samples of
// the HP orbit z_{k+1} = z_k^2 + c, c = center. Length <= cap(Re).
type Orbit struct {
	Re         []float64
	Im         []float64
	Length     int
	Generation int64
}

// New allocates sample buffers sized for maxIter iterations.
func New(maxIter int) *Orbit {
	return &Orbit{
		Re: make([]float64, maxIter),
		Im: make([]float64, maxIter),
	}
}

// Resize grows or shrinks the sample buffers to hold maxIter samples,
// matching the realloc on max_iter doubling/halving in
// original_source/src/main.c.
func (o *Orbit) Resize(maxIter int) {
	if cap(o.Re) >= maxIter {
		o.Re = o.Re[:maxIter]
		o.Im = o.Im[:maxIter]
		return
	}
	o.Re = make([]float64, maxIter)
	o.Im = make([]float64, maxIter)
}

// liveGeneration returns the current render generation. Passed in
// rather than read from a shared atomic so the package stays free of
// global state.
type liveGeneration func() int64

// Compute iterates z = z^2 + c at center in HP arithmetic, storing
// float64 samples into o.Re/o.Im up to maxIter entries (o must already
// be sized via New/Resize). It stops early once |z|^2 exceeds
// EscapeRadius^4 - a deliberately loose bound so the orbit remains a
// useful reference past the point a perturbed pixel would itself have
// escaped. Before each iteration it compares isLive() with generation;
// on a mismatch it returns false without having set o.Length,
// signaling the caller to discard this orbit.
func Compute(centerRe, centerIm *hp.Float, maxIter int, generation int64, isLive liveGeneration, o *Orbit) bool {
	escapeRadiusSq := config.EscapeRadius * config.EscapeRadius
	escapeThreshold := hp.New().SetFloat64(escapeRadiusSq * escapeRadiusSq)

	zRe := hp.New().SetFloat64(0)
	zIm := hp.New().SetFloat64(0)

	reSqr := hp.New()
	imSqr := hp.New()
	tempRe := hp.New()
	tempIm := hp.New()
	modSq := hp.New()

	length := 0

	for iter := 0; iter < maxIter; iter++ {
		if isLive != nil && isLive() != generation {
			return false
		}

		o.Re[iter] = zRe.Float64()
		o.Im[iter] = zIm.Float64()
		length = iter + 1

		reSqr.Mul(zRe, zRe)
		imSqr.Mul(zIm, zIm)
		tempRe.Sub(reSqr, imSqr)

		tempIm.Mul(zRe, zIm)
		tempIm.MulFloat64(tempIm, 2)

		zRe.Add(tempRe, centerRe)
		zIm.Add(tempIm, centerIm)

		reSqr.Mul(zRe, zRe)
		imSqr.Mul(zIm, zIm)
		modSq.Add(reSqr, imSqr)

		if modSq.Cmp(escapeThreshold) > 0 {
			break
		}
	}

	o.Length = length
	o.Generation = generation
	return true
}
