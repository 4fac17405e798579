package flownoise

import (
	"errors"
	"fmt"
	"math"
)

// Layer is a Field sampled at its own frequency, amplitude and domain offset.
type Layer struct {
	Field     Field
	Frequency float64
	Amplitude float64
	OffsetX   float64
	OffsetY   float64
}

// Layers sums several noise layers into a single field.
// Using independently seeded fields per layer keeps the layers decorrelated.
type Layers []Layer

// Noise2D returns the amplitude weighted sum of all layers at (x, y).
func (ls Layers) Noise2D(x, y float64) float64 {
	var sum float64
	for _, l := range ls {
		sum += l.Amplitude * l.Field.Noise2D(x*l.Frequency+l.OffsetX, y*l.Frequency+l.OffsetY)
	}
	return sum
}

// Noise3D is like Noise2D, with z passed through to every layer unscaled.
func (ls Layers) Noise3D(x, y, z float64) float64 {
	var sum float64
	for _, l := range ls {
		sum += l.Amplitude * l.Field.Noise3D(x*l.Frequency+l.OffsetX, y*l.Frequency+l.OffsetY, z)
	}
	return sum
}

// Span returns the sum of the absolute layer amplitudes,
// which bounds the output when every field stays within [-1, 1].
func (ls Layers) Span() float64 {
	var span float64
	for _, l := range ls {
		span += math.Abs(l.Amplitude)
	}
	return span
}

// ErrInvalidOctaves is returned when a fractal is requested with fewer than one octave.
var ErrInvalidOctaves = errors.New("octaves must be at least 1")

// FractalOptions configures fractal (fBm) octave summing.
type FractalOptions struct {
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64
}

// DefaultFractalOptions returns the usual settings: four octaves,
// doubling frequency and halving amplitude at each step.
func DefaultFractalOptions() FractalOptions {
	return FractalOptions{
		Octaves:     4,
		Frequency:   1,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Validate reports whether the options describe a usable fractal.
func (o FractalOptions) Validate() error {
	if o.Octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOctaves, o.Octaves)
	}
	return nil
}

// Fractal sums o.Octaves octaves of f at (x, y) and normalizes the result by the
// total amplitude, so it stays in [-1, 1] whenever f does.
func Fractal(f Field, x, y float64, o FractalOptions) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return fractal(f, x, y, o), nil
}

func fractal(f Field, x, y float64, o FractalOptions) float64 {
	var total, maxAmp float64
	amp, freq := 1.0, o.Frequency

	for i := 0; i < o.Octaves; i++ {
		total += f.Noise2D(x*freq, y*freq) * amp
		maxAmp += math.Abs(amp)
		freq *= o.Lacunarity
		amp *= o.Persistence
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}

// FractalField wraps a field so that every 2D query is an octave sum.
// 3D queries sum octaves over all three axes.
type FractalField struct {
	Field   Field
	Options FractalOptions
}

// NewFractalField validates o and returns the wrapping field.
func NewFractalField(f Field, o FractalOptions) (*FractalField, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &FractalField{Field: f, Options: o}, nil
}

func (ff *FractalField) Noise2D(x, y float64) float64 {
	return fractal(ff.Field, x, y, ff.Options)
}

func (ff *FractalField) Noise3D(x, y, z float64) float64 {
	var total, maxAmp float64
	amp, freq := 1.0, ff.Options.Frequency

	for i := 0; i < ff.Options.Octaves; i++ {
		total += ff.Field.Noise3D(x*freq, y*freq, z*freq) * amp
		maxAmp += math.Abs(amp)
		freq *= ff.Options.Lacunarity
		amp *= ff.Options.Persistence
	}
	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
