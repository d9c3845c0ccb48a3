// Package filter builds the glass refraction filter graph.
//
// A [Graph] is an ordered list of typed stage records, each naming the
// outputs of earlier stages it consumes. [Build] is a pure function of
// [Params]: equal parameters always yield structurally equal graphs, so
// callers can rebuild on every parameter change.
//
// The stage order is fixed:
//
//	stripe-clear  flood, transparent, x=0 width=stripeSize
//	stripe-ink    flood, opaque black, x=stripeSize width=stripeSize
//	stripe        composite stripe-ink over stripe-clear
//	stripes       tile stripe across the filter region
//	displace      gaussian blur of stripes by blurRadius
//	glass         displace SourceGraphic by displace (A, A), scale 23
//	blur          gaussian blur of SourceGraphic, radius 4
//	noise         fractal noise, distortion as base frequency, 4 octaves, seed 6
//	noisy-src     displace blur by noise, scale noiseScale
//	combined      composite noisy-src lighter glass
//	tinted        diagonal color matrix from tintColor and tintIntensity
//
// A graph is consumed either as SVG markup ([Graph.WriteSVG]), bound by its
// identifier, or executed on pixels ([Graph.Apply]).
package filter
