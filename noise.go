package flownoise

import "math"

// Noise is a seeded gradient noise generator in two and three dimensions.
// The permutation table is built once by New and only read afterwards,
// so a single instance can be queried from any number of goroutines.
type Noise struct {
	seed float64
	perm [512]uint8
}

// New creates a noise generator from seed. Every seed is valid, including zero,
// negative and fractional values, and equal seeds always yield equal tables.
func New(seed float64) *Noise {
	n := &Noise{seed: seed}
	shuffle(seed, &n.perm)
	return n
}

// Seed returns the seed the generator was built from.
func (n *Noise) Seed() float64 {
	return n.seed
}

// Noise2D returns the noise value at (x, y), approximately in the range [-1, 1].
// The value is zero at every integer lattice point and the field repeats every 256 units
// on both axes. Coordinates are expected to stay within |v| < 2^31; beyond that the
// lattice index aliases silently.
func (n *Noise) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	X := int(fx) & 255
	Y := int(fy) & 255

	x -= fx
	y -= fy

	u := fade(x)
	v := fade(y)

	p := &n.perm
	A := int(p[X]) + Y
	B := int(p[X+1]) + Y

	return lerp(
		lerp(grad2(p[A], x, y), grad2(p[B], x-1, y), u),
		lerp(grad2(p[A+1], x, y-1), grad2(p[B+1], x-1, y-1), u),
		v,
	)
}

// Noise3D returns the noise value at (x, y, z), approximately in the range [-1, 1].
// It is mostly used to evolve a 2D field smoothly over time by passing time as z.
func (n *Noise) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	p := &n.perm
	A := int(p[X]) + Y
	AA := int(p[A]) + Z
	AB := int(p[A+1]) + Z
	B := int(p[X+1]) + Y
	BA := int(p[B]) + Z
	BB := int(p[B+1]) + Z

	return lerp(
		lerp(
			lerp(grad3(p[AA], x, y, z), grad3(p[BA], x-1, y, z), u),
			lerp(grad3(p[AB], x, y-1, z), grad3(p[BB], x-1, y-1, z), u),
			v,
		),
		lerp(
			lerp(grad3(p[AA+1], x, y, z-1), grad3(p[BA+1], x-1, y, z-1), u),
			lerp(grad3(p[AB+1], x, y-1, z-1), grad3(p[BB+1], x-1, y-1, z-1), u),
			v,
		),
		w,
	)
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad2 picks one of the four diagonal gradients from the two low bits of hash
// and returns its dot product with (x, y).
func grad2(hash uint8, x, y float64) float64 {
	h := hash & 3
	u, v := x, y
	if h >= 2 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// grad3 picks one of the twelve cube edge gradients from the low four bits of hash.
// Hashes 12 and 14 repeat the x/y gradients to fill the table up to sixteen entries.
func grad3(hash uint8, x, y, z float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
