package effect

import (
	"math"

	"github.com/gogpu/glass/internal/cache"
)

// GaussianKernel generates a normalized 1D Gaussian kernel with the given
// standard deviation.
//
// The kernel size is 2 * ceil(sigma * 3) + 1, which covers 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1.0].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	// exp(-x²/(2σ²)); the constant factor cancels during normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache holds kernels keyed by sigma quantized to 0.01. Rebuilds
// during live parameter edits hit the same handful of radii.
var kernelCache = cache.New[int, []float32](64)

// CachedGaussianKernel returns a cached Gaussian kernel for sigma. The
// returned slice is shared and must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	return kernelCache.GetOrCreate(key, func() []float32 {
		return GaussianKernel(float64(key) / 100)
	})
}
