// Package effect implements the pixel operations behind the glass filter
// stages.
//
// Every operation reads and writes premultiplied RGBA8 pixmaps and only
// touches pixels inside the region it is given; pixels an operation reads
// from outside its input region are treated as transparent black, matching
// SVG filter primitive semantics:
//   - Flood (solid color over a subregion)
//   - Tile (replicate an input subregion)
//   - Gaussian blur (separable, O(n) per radius)
//   - Displacement map
//   - Perlin turbulence and fractal noise
//   - Porter-Duff over and additive lighter composites
//   - 4x5 color matrix
package effect
