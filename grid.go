package flownoise

import (
	"errors"
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

// ErrInvalidGrid is returned when a grid has no cells.
var ErrInvalidGrid = errors.New("invalid grid dimensions")

// Grid describes a rectangular lattice of sample positions.
// Cell (i, j) is sampled at ((i+OffsetX)*Scale, (j+OffsetY)*Scale, Z).
type Grid struct {
	Width   int
	Height  int
	Scale   float64
	OffsetX float64
	OffsetY float64
	Z       float64
	// Use3D samples Noise3D at depth Z instead of Noise2D.
	Use3D bool
}

// Validate reports whether the grid has a positive number of cells.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// At returns the field coordinates of cell (i, j).
func (g Grid) At(i, j int) (x, y float64) {
	return (float64(i) + g.OffsetX) * g.Scale, (float64(j) + g.OffsetY) * g.Scale
}

// SampleGrid evaluates f on every cell of g and returns the values in row-major order.
// Rows are sampled concurrently; f must be safe for concurrent reads.
func SampleGrid(f Field, g Grid) ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	values := make([]float64, g.Width*g.Height)

	parallel.For(g.Height, func(j, _ int) {
		row := values[j*g.Width : (j+1)*g.Width]
		for i := range row {
			x, y := g.At(i, j)
			if g.Use3D {
				row[i] = f.Noise3D(x, y, g.Z)
			} else {
				row[i] = f.Noise2D(x, y)
			}
		}
	})
	return values, nil
}

// Stats summarizes a set of noise samples.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summarize computes the statistics of values. An empty slice yields zero Stats.
func Summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{
		Count: len(values),
		Min:   math.Inf(1),
		Max:   math.Inf(-1),
	}
	var sum float64
	for _, v := range values {
		s.Min = Min(s.Min, v)
		s.Max = Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(values))
	return s
}
