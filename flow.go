package flownoise

import "math"

// FlowField turns a noise field into a direction field.
// A sample at (x, y) is read from the source at (x*Scale, y*Scale) and its
// [-1, 1] value is mapped onto an angle in [-Span, Span] radians.
type FlowField struct {
	Source Field
	Scale  float64
	Span   float64
}

// NewFlowField returns a flow field over f where a full noise swing turns
// the direction by two full revolutions.
func NewFlowField(f Field, scale float64) *FlowField {
	return &FlowField{
		Source: f,
		Scale:  scale,
		Span:   2 * math.Pi,
	}
}

// Angle returns the flow direction in radians at (x, y).
func (ff *FlowField) Angle(x, y float64) float64 {
	return ff.angle(ff.Source.Noise2D(x*ff.Scale, y*ff.Scale))
}

// AngleAt returns the flow direction at (x, y) at time t.
// Time is not scaled, so callers control how fast the field evolves.
func (ff *FlowField) AngleAt(x, y, t float64) float64 {
	return ff.angle(ff.Source.Noise3D(x*ff.Scale, y*ff.Scale, t))
}

// Direction returns the unit vector pointing along the flow at (x, y).
func (ff *FlowField) Direction(x, y float64) (dx, dy float64) {
	a := ff.Angle(x, y)
	return math.Cos(a), math.Sin(a)
}

func (ff *FlowField) angle(v float64) float64 {
	return Remap(v, -1, 1, -ff.Span, ff.Span)
}
