// Package match implements C5: selecting which OSM ways represent each
// priority edge, via buffered containment, an orthogonal short-way
// filter, and manual include/exclude overrides (spec §4.5).
package match

// Config holds the per-data-source tunables from spec §4.5.
type Config struct {
	BufferMeters    float64 // containment buffer radius
	MinFraction     float64 // F, default 0.7
	EnableOrtho     bool
	ShortWayMeters  float64 // L_short, default 50
	OrthoBuffer     float64 // B_ortho, default 25
	OrthoDeltaDeg   float64 // Δortho, default 50
	ComplexGuardDeg float64 // default 60
	ProbeSpacing    float64 // default 5
	DiffBufferM     float64 // B_diff, default 10
	DiffFraction    float64 // default 0.8
}

// DefaultBikelanesConfig returns spec defaults for the bikelanes source.
func DefaultBikelanesConfig() Config {
	return Config{
		BufferMeters: 25, MinFraction: 0.7, EnableOrtho: true,
		ShortWayMeters: 50, OrthoBuffer: 25, OrthoDeltaDeg: 50,
		ComplexGuardDeg: 60, ProbeSpacing: 5, DiffBufferM: 10, DiffFraction: 0.8,
	}
}

// DefaultStreetsConfig returns spec defaults for the streets source.
func DefaultStreetsConfig() Config {
	c := DefaultBikelanesConfig()
	c.BufferMeters = 15
	return c
}

// DefaultPathsConfig returns spec defaults for the paths source.
func DefaultPathsConfig() Config {
	c := DefaultBikelanesConfig()
	c.BufferMeters = 15
	return c
}
