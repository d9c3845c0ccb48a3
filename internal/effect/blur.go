package effect

import (
	"image"
	"sync"

	"github.com/gogpu/glass/internal/pixmap"
)

// Blur applies a separable Gaussian blur with standard deviation stdDev to
// the region of src and writes the result into the same region of dst.
//
// Pixels outside region contribute transparent black, so content fades out
// at the region edges instead of being extended.
func Blur(src, dst *pixmap.Pixmap, region image.Rectangle, stdDev float64) {
	if src == nil || dst == nil {
		return
	}
	region = region.Intersect(src.Bounds()).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}

	if stdDev <= 0 {
		copyRegion(src, dst, region)
		return
	}

	temp := getTempBuffer(region.Dx(), region.Dy())
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(stdDev)

	blurHorizontal(src, temp, region, kernel)
	blurVertical(temp, dst, region, kernel)
}

// blurHorizontal convolves each row of the region into temp.
func blurHorizontal(src *pixmap.Pixmap, temp []float32, region image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width := region.Dx()
	data := src.Data()
	stride := src.Width() * 4

	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := y * stride
		for x := region.Min.X; x < region.Max.X; x++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := x + k - half
				if kx < region.Min.X || kx >= region.Max.X {
					continue
				}
				i := row + kx*4
				r += float32(data[i+0]) * weight
				g += float32(data[i+1]) * weight
				b += float32(data[i+2]) * weight
				a += float32(data[i+3]) * weight
			}

			t := ((y-region.Min.Y)*width + (x - region.Min.X)) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical convolves each column of temp into the region of dst.
func blurVertical(temp []float32, dst *pixmap.Pixmap, region image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width := region.Dx()
	height := region.Dy()
	data := dst.Data()

	for ty := 0; ty < height; ty++ {
		for tx := 0; tx < width; tx++ {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := ty + k - half
				if ky < 0 || ky >= height {
					continue
				}
				t := (ky*width + tx) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}

			i := dst.Offset(region.Min.X+tx, region.Min.Y+ty)
			data[i+0] = clampUint8(r)
			data[i+1] = clampUint8(g)
			data[i+2] = clampUint8(b)
			data[i+3] = clampUint8(a)
		}
	}
}

// copyRegion copies the pixels of region from src to dst.
func copyRegion(src, dst *pixmap.Pixmap, region image.Rectangle) {
	region = region.Intersect(src.Bounds()).Intersect(dst.Bounds())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		from := src.Offset(region.Min.X, y)
		to := dst.Offset(region.Min.X, y)
		n := region.Dx() * 4
		copy(dst.Data()[to:to+n], src.Data()[from:from+n])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		// Fits the 400x400 reference filter region.
		return &floatBuffer{data: make([]float32, 400*400*4)}
	},
}

// getTempBuffer returns a zeroed buffer with at least width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 rounds v to the nearest byte value in [0, 255].
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
