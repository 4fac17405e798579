/*
Package flownoise is a deterministic gradient noise library for generative art sketches.

A Noise is built once from a seed and then answers 2D and 3D queries with smoothly varying
values in approximately [-1, 1]. Equal seeds always produce equal fields, so a sketch can be
redrawn exactly, and several independently seeded fields can be layered to decorrelate
texture from flow.

The package also provides a command line utility to sample fields.
Check the supported commands by typing:

	$ flownoise --help

Example to drive a flow field from a seeded noise:

	package main

	import (
		"fmt"
		"math"

		"github.com/esimov/flownoise"
	)

	func main() {
		n := flownoise.New(42)

		for x := 0.0; x < 100; x += 10 {
			angle := n.Noise2D(x*0.005, 0) * math.Pi * 2
			fmt.Println(angle)
		}
	}

Example to combine independently seeded layers at different frequencies:

	layers := flownoise.Layers{
		{Field: flownoise.New(1), Frequency: 0.004, Amplitude: 1},
		{Field: flownoise.New(2), Frequency: 0.015, Amplitude: 0.5},
		{Field: flownoise.New(3), Frequency: 0.04, Amplitude: 0.25},
	}
	v := layers.Noise2D(120, 80)

The lattice wraps every 256 units on each axis and coordinates are expected to stay within
|v| < 2^31. Beyond that the lattice index aliases silently instead of failing.
*/
package flownoise
