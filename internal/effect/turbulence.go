package effect

import (
	"image"
	"math"

	"github.com/gogpu/glass/internal/pixmap"
)

// Lattice sizes and the Park-Miller generator constants of the reference
// feTurbulence algorithm.
const (
	bSize   = 0x100
	bMask   = 0xff
	perlinN = 0x1000

	randM = 2147483647 // 2^31 - 1
	randA = 16807
	randQ = 127773 // randM / randA
	randR = 2836   // randM % randA
)

// NoiseType selects how octaves are summed.
type NoiseType uint8

const (
	// FractalNoise sums signed noise and maps [-1, 1] to [0, 1].
	FractalNoise NoiseType = iota

	// Turbulence sums absolute noise.
	Turbulence
)

// String returns the SVG type attribute value.
func (t NoiseType) String() string {
	if t == Turbulence {
		return "turbulence"
	}
	return "fractalNoise"
}

// Noise is a seeded Perlin lattice. A Noise is immutable after creation and
// safe for concurrent reads.
type Noise struct {
	lattice  [bSize + bSize + 2]int
	gradient [4][bSize + bSize + 2][2]float64
}

// NewNoise builds the lattice for seed exactly as the SVG reference code does,
// so equal seeds produce equal noise.
func NewNoise(seed int64) *Noise {
	n := &Noise{}
	s := setupSeed(seed)

	for k := 0; k < 4; k++ {
		for i := 0; i < bSize; i++ {
			n.lattice[i] = i
			for j := 0; j < 2; j++ {
				s = random(s)
				n.gradient[k][i][j] = float64((s%(bSize+bSize))-bSize) / bSize
			}
			g := &n.gradient[k][i]
			l := math.Sqrt(g[0]*g[0] + g[1]*g[1])
			if l != 0 {
				g[0] /= l
				g[1] /= l
			}
		}
	}

	for i := bSize - 1; i > 0; i-- {
		s = random(s)
		j := int(s % bSize)
		n.lattice[i], n.lattice[j] = n.lattice[j], n.lattice[i]
	}

	for i := 0; i < bSize+2; i++ {
		n.lattice[bSize+i] = n.lattice[i]
		for k := 0; k < 4; k++ {
			n.gradient[k][bSize+i] = n.gradient[k][i]
		}
	}

	return n
}

func setupSeed(seed int64) int64 {
	if seed <= 0 {
		seed = -(seed % (randM - 1)) + 1
	}
	if seed > randM-1 {
		seed = randM - 1
	}
	return seed
}

func random(seed int64) int64 {
	r := randA*(seed%randQ) - randR*(seed/randQ)
	if r <= 0 {
		r += randM
	}
	return r
}

func sCurve(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// noise2 evaluates one channel of gradient noise at (vx, vy).
func (n *Noise) noise2(channel int, vx, vy float64) float64 {
	t := vx + perlinN
	bx0 := int(t) & bMask
	bx1 := (bx0 + 1) & bMask
	rx0 := t - float64(int(t))
	rx1 := rx0 - 1

	t = vy + perlinN
	by0 := int(t) & bMask
	by1 := (by0 + 1) & bMask
	ry0 := t - float64(int(t))
	ry1 := ry0 - 1

	i := n.lattice[bx0]
	j := n.lattice[bx1]
	b00 := n.lattice[i+by0]
	b10 := n.lattice[j+by0]
	b01 := n.lattice[i+by1]
	b11 := n.lattice[j+by1]

	sx := sCurve(rx0)
	sy := sCurve(ry0)

	g := n.gradient[channel]

	u := rx0*g[b00][0] + ry0*g[b00][1]
	v := rx1*g[b10][0] + ry0*g[b10][1]
	a := lerp(sx, u, v)

	u = rx0*g[b01][0] + ry1*g[b01][1]
	v = rx1*g[b11][0] + ry1*g[b11][1]
	b := lerp(sx, u, v)

	return lerp(sy, a, b)
}

// Sum returns the octave sum for one channel at point (x, y).
func (n *Noise) Sum(channel int, x, y, freqX, freqY float64, octaves int, typ NoiseType) float64 {
	vx := x * freqX
	vy := y * freqY
	ratio := 1.0
	sum := 0.0

	for o := 0; o < octaves; o++ {
		v := n.noise2(channel, vx, vy)
		if typ == Turbulence {
			v = math.Abs(v)
		}
		sum += v / ratio
		vx *= 2
		vy *= 2
		ratio *= 2
	}

	return sum
}

// Render fills region of dst with noise. Each RGBA channel uses its own
// gradient table; the result is premultiplied before storage.
func (n *Noise) Render(dst *pixmap.Pixmap, region image.Rectangle, freqX, freqY float64, octaves int, typ NoiseType) {
	if dst == nil {
		return
	}
	region = region.Intersect(dst.Bounds())
	d := dst.Data()

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			var c [4]float64
			for ch := 0; ch < 4; ch++ {
				v := n.Sum(ch, float64(x), float64(y), freqX, freqY, octaves, typ)
				if typ == FractalNoise {
					v = (v + 1) / 2
				}
				c[ch] = clampUnit(v)
			}

			i := dst.Offset(x, y)
			d[i+0] = uint8(math.Round(c[0] * c[3] * 255))
			d[i+1] = uint8(math.Round(c[1] * c[3] * 255))
			d[i+2] = uint8(math.Round(c[2] * c[3] * 255))
			d[i+3] = uint8(math.Round(c[3] * 255))
		}
	}
}
