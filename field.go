package flownoise

import (
	"errors"
	"fmt"
	"math"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Field is a continuous scalar noise source.
// Implementations must be safe for concurrent reads.
type Field interface {
	Noise2D(x, y float64) float64
	Noise3D(x, y, z float64) float64
}

// Backend selects the algorithm behind a Field.
type Backend int

const (
	// BackendGradient is the permutation table gradient noise implemented by Noise.
	BackendGradient Backend = iota
	// BackendSimplex is OpenSimplex noise.
	BackendSimplex
	// BackendPerlin is the classic Perlin noise with octave summing.
	BackendPerlin
)

// ErrUnknownBackend is returned when a backend name or value is not recognised.
var ErrUnknownBackend = errors.New("unknown noise backend")

// Classic Perlin parameters: weight divisor, frequency multiplier and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

var backendNames = map[Backend]string{
	BackendGradient: "gradient",
	BackendSimplex:  "simplex",
	BackendPerlin:   "perlin",
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend converts a backend name (case insensitive) into a Backend.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// NewField creates a seeded Field using the given backend.
// Backends other than BackendGradient take an integer seed, so seed is floored first.
func NewField(b Backend, seed float64) (Field, error) {
	switch b {
	case BackendGradient:
		return New(seed), nil
	case BackendSimplex:
		return &simplexField{noise: opensimplex.New(intSeed(seed))}, nil
	case BackendPerlin:
		return &perlinField{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, intSeed(seed))}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
}

func intSeed(seed float64) int64 {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return 0
	}
	return int64(math.Floor(seed))
}

type simplexField struct {
	noise opensimplex.Noise
}

func (f *simplexField) Noise2D(x, y float64) float64 {
	return f.noise.Eval2(x, y)
}

func (f *simplexField) Noise3D(x, y, z float64) float64 {
	return f.noise.Eval3(x, y, z)
}

type perlinField struct {
	noise *perlin.Perlin
}

func (f *perlinField) Noise2D(x, y float64) float64 {
	return f.noise.Noise2D(x, y)
}

func (f *perlinField) Noise3D(x, y, z float64) float64 {
	return f.noise.Noise3D(x, y, z)
}
